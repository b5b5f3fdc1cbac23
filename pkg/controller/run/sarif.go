package run

import (
	"encoding/json"
	"fmt"

	"github.com/lintgate/lintgate/pkg/sarif"
	"github.com/lintgate/lintgate/pkg/scan"
)

// outputSARIF renders findings as a SARIF 2.1.0 log on stdout, one rule
// per requested tool so code scanning UIs can group by tool.
func (c *Controller) outputSARIF(findings []scan.Finding, tools []scan.Tool) error {
	rules := make([]sarif.Rule, 0, len(tools))
	for _, t := range tools {
		rules = append(rules, sarif.Rule{
			ID: t.String(),
			ShortDescription: sarif.Message{
				Text: "Inline " + t.String() + " suppression directive",
			},
		})
	}

	log := sarif.Log{
		Schema:  "https://json.schemastore.org/sarif-2.1.0.json",
		Version: "2.1.0",
		Runs: []sarif.Run{
			{
				Tool: sarif.Tool{
					Driver: sarif.Driver{
						Name:           "lintgate",
						InformationURI: "https://github.com/lintgate/lintgate",
						Rules:          rules,
					},
				},
				Results: buildSARIFResults(findings),
			},
		},
	}

	encoder := json.NewEncoder(c.param.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(log); err != nil {
		return fmt.Errorf("encode SARIF: %w", err)
	}
	return nil
}

func buildSARIFResults(findings []scan.Finding) []sarif.Result {
	results := make([]sarif.Result, 0, len(findings))
	for _, f := range findings {
		results = append(results, sarif.Result{
			RuleID:  f.Tool,
			Level:   "warning",
			Message: sarif.Message{Text: "Inline suppression directive: " + f.Directive},
			Locations: []sarif.Location{
				{
					PhysicalLocation: sarif.PhysicalLocation{
						ArtifactLocation: sarif.ArtifactLocation{
							URI: f.Path,
						},
						Region: sarif.Region{
							StartLine: f.Line,
						},
					},
				},
			},
		})
	}
	return results
}
