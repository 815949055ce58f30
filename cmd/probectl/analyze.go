package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/ddekshina/ProjectProbe/config"
	"github.com/ddekshina/ProjectProbe/domains/analysis"
	"github.com/ddekshina/ProjectProbe/domains/cache"
	"github.com/ddekshina/ProjectProbe/domains/enhance"
	"github.com/ddekshina/ProjectProbe/domains/repos"
	"github.com/ddekshina/ProjectProbe/libs/githubapi"
	"github.com/ddekshina/ProjectProbe/libs/gitrepo"
	"github.com/ddekshina/ProjectProbe/pkg/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newAnalyzeCmd() *cobra.Command {
	var (
		asJSON     bool
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "analyze <repository-url>",
		Short: "Analyze a GitHub repository and print its description",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config.MustLoad(configPath)

			l := logger.NewNop()
			if os.Getenv("PROBECTL_DEBUG") != "" {
				l = logger.New()
			}

			analyzer := buildAnalyzer(l)
			result, err := analyzer.Analyze(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(result)
			}

			printResult(result)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the full result as JSON")
	cmd.Flags().StringVar(&configPath, "config", "", "path to a config file")
	return cmd
}

func buildAnalyzer(l *zap.Logger) *analysis.Analyzer {
	resultCache, err := cache.NewFromConfig(l)
	if err != nil {
		// One-shot runs work fine without a cache.
		resultCache = nil
	}

	var enhancer analysis.Enhancer
	if e := enhance.New(l); e != nil {
		enhancer = e
	}

	snapshot := func(ctx context.Context, repoURL string) (repos.CodeBundle, error) {
		return gitrepo.Snapshot(ctx, l, repoURL)
	}

	return analysis.New(l, githubapi.New(l), snapshot, enhancer, resultCache)
}

func printResult(result *analysis.AnalysisResult) {
	desc := result.Description

	if result.RepoInfo != nil {
		fmt.Printf("%s (%d stars, %d forks)\n\n", result.RepoInfo.FullName,
			result.RepoInfo.Stars, result.RepoInfo.Forks)
	}

	fmt.Println("Summary")
	fmt.Println("  " + desc.Summary)

	if len(desc.MainFeatures) > 0 {
		fmt.Println("\nMain features")
		for _, f := range desc.MainFeatures {
			fmt.Println("  - " + f)
		}
	}

	printCategory := func(label string, names []string) {
		if len(names) > 0 {
			fmt.Printf("  %s: %s\n", label, strings.Join(names, ", "))
		}
	}
	fmt.Println("\nTechnologies")
	printCategory("languages", desc.Technologies.Languages)
	printCategory("frameworks", desc.Technologies.Frameworks)
	printCategory("libraries", desc.Technologies.Libraries)
	printCategory("tools", desc.Technologies.Tools)

	fmt.Println("\nArchitecture")
	fmt.Println(indent(desc.Architecture))

	fmt.Println("Setup")
	fmt.Println(indent(desc.SetupInstructions))

	fmt.Println("Code quality")
	fmt.Println(indent(desc.CodeQuality))

	if enh := desc.AIEnhanced; enh != nil {
		fmt.Println("AI-enhanced summary")
		fmt.Println(indent(enh.Summary))
	}
}

func indent(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	for i := range lines {
		lines[i] = "  " + lines[i]
	}
	return strings.Join(lines, "\n") + "\n"
}
