package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/regtrack/regtrack/pkg/cli/config"
	"github.com/regtrack/regtrack/pkg/usecase"
	"github.com/regtrack/regtrack/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdCheck() *cli.Command {
	var appCfg config.AppConfig
	var repoCfg config.Repository
	var geminiCfg config.Gemini

	var flags []cli.Flag
	flags = append(flags, appCfg.Flags()...)
	flags = append(flags, repoCfg.Flags()...)
	flags = append(flags, geminiCfg.Flags()...)

	return &cli.Command{
		Name:    "check",
		Aliases: []string{"c"},
		Usage:   "Run a one-shot AI compliance check and print the report",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			domainCfg, err := appCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to load configuration")
			}

			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer func() {
				if err := repo.Close(); err != nil {
					logging.Default().Error("failed to close repository", "error", err.Error())
				}
			}()

			llmClient, err := geminiCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize Gemini client")
			}
			if llmClient == nil {
				return goerr.New("gemini-project is required for compliance checks")
			}

			uc := usecase.New(repo,
				usecase.WithComplianceConfig(domainCfg),
				usecase.WithLLM(llmClient),
			)

			heading := color.New(color.FgCyan, color.Bold)
			heading.Println("Running compliance check...")

			report, err := uc.Compliance.RunCheck(ctx)
			if err != nil {
				color.Red("Compliance check failed: %v", err)
				return goerr.Wrap(err, "compliance check failed")
			}

			heading.Printf("Report %s (completed %s)\n\n",
				report.ID,
				report.CompletedAt.Format("2006-01-02 15:04:05 MST"),
			)
			fmt.Println(report.Content)

			return nil
		},
	}
}
