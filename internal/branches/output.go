package branches

import (
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/mpetrenko/branchscope/internal/gitrepo"
	"github.com/mpetrenko/branchscope/internal/repos/shared"
)

const (
	unsupportedOutputFormatTemplateConstant = "unsupported output format: %s"
	localBranchLineTemplateConstant         = "LOCAL: %s %s%s (in %s)\n"
	remoteBranchLineTemplateConstant        = "REMOTE: %s %s (in %s)\n"
	divergedBranchLineTemplateConstant      = "DIVERGED: %s %s -> %s (in %s)\n"
	upstreamSuffixTemplateConstant          = " -> %s"
	yamlEncodeErrorTemplateConstant         = "failed to encode report: %w"
	shortObjectNameLengthConstant           = 7
)

// repositoryReport groups the branches discovered in a single repository for serialization.
type repositoryReport struct {
	Repository string         `yaml:"repository"`
	Branches   []branchReport `yaml:"branches"`
}

type branchReport struct {
	Name      string         `yaml:"name"`
	Ref       string         `yaml:"ref"`
	Kind      string         `yaml:"kind"`
	Commit    string         `yaml:"commit"`
	Upstream  string         `yaml:"upstream,omitempty"`
	Author    identityReport `yaml:"author"`
	Committer identityReport `yaml:"committer"`
}

type identityReport struct {
	Name      string    `yaml:"name"`
	Email     string    `yaml:"email"`
	Timestamp time.Time `yaml:"timestamp"`
}

func buildRepositoryReport(repositoryPath string, branches []gitrepo.Branch) repositoryReport {
	branchReports := make([]branchReport, 0, len(branches))
	for _, branch := range branches {
		branchReports = append(branchReports, branchReport{
			Name:      branch.Name,
			Ref:       branch.RefName,
			Kind:      string(branch.Kind),
			Commit:    branch.TipSHA,
			Upstream:  branch.UpstreamName,
			Author:    identityReport{Name: branch.TipAuthor.Name, Email: branch.TipAuthor.Email, Timestamp: branch.TipAuthor.When},
			Committer: identityReport{Name: branch.TipCommitter.Name, Email: branch.TipCommitter.Email, Timestamp: branch.TipCommitter.When},
		})
	}
	return repositoryReport{Repository: repositoryPath, Branches: branchReports}
}

func renderYAMLReport(outputWriter io.Writer, reports []repositoryReport) error {
	encoder := yaml.NewEncoder(outputWriter)
	defer encoder.Close()
	if encodeError := encoder.Encode(reports); encodeError != nil {
		return fmt.Errorf(yamlEncodeErrorTemplateConstant, encodeError)
	}
	return nil
}

func renderBranchLines(reporter shared.Reporter, repositoryPath string, branches []gitrepo.Branch) {
	for _, branch := range branches {
		abbreviatedCommit := abbreviateObjectName(branch.TipSHA)
		switch branch.Kind {
		case gitrepo.BranchKindLocal:
			upstreamSuffix := ""
			if branch.HasUpstream {
				upstreamSuffix = fmt.Sprintf(upstreamSuffixTemplateConstant, branch.UpstreamName)
			}
			reporter.Printf(localBranchLineTemplateConstant, branch.Name, abbreviatedCommit, upstreamSuffix, repositoryPath)
		default:
			reporter.Printf(remoteBranchLineTemplateConstant, branch.Name, abbreviatedCommit, repositoryPath)
		}
	}
}

func renderDivergedLines(reporter shared.Reporter, repositoryPath string, branches []gitrepo.Branch) {
	for _, branch := range branches {
		reporter.Printf(divergedBranchLineTemplateConstant, branch.Name, abbreviateObjectName(branch.TipSHA), branch.UpstreamName, repositoryPath)
	}
}

func abbreviateObjectName(objectName string) string {
	if len(objectName) <= shortObjectNameLengthConstant {
		return objectName
	}
	return objectName[:shortObjectNameLengthConstant]
}

func validateOutputFormat(outputFormat string) error {
	switch outputFormat {
	case OutputFormatText, OutputFormatYAML:
		return nil
	default:
		return fmt.Errorf(unsupportedOutputFormatTemplateConstant, outputFormat)
	}
}
