package main

import (
	"context"
	"log"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
	"github.com/spf13/cobra"
	"github.com/vvakame/gqldesc/descriptors"
	"github.com/vvakame/gqldesc/internal/manifest"
)

func main() {
	err := realMain()
	if err != nil {
		os.Exit(1)
	}
}

func realMain() error {
	logger := stdr.New(log.New(os.Stderr, "", log.LstdFlags))
	ctx := logr.NewContext(context.Background(), logger)

	return newRootCmd().ExecuteContext(ctx)
}

type rootOptions struct {
	verbosity int
	files     []string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:          "gqldesc",
		Short:        "Build GraphQL directive declarations from YAML manifests",
		SilenceUsage: true,
	}
	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		stdr.SetVerbosity(opts.verbosity)
	}
	cmd.PersistentFlags().IntVarP(&opts.verbosity, "verbose", "v", 0, "log verbosity")
	cmd.PersistentFlags().StringSliceVarP(&opts.files, "file", "f", nil, "manifest files")
	_ = cmd.MarkPersistentFlagRequired("file")

	cmd.AddCommand(newPrintCmd(opts))
	cmd.AddCommand(newDumpCmd(opts))

	return cmd
}

func loadManifests(files []string) (*manifest.Manifest, error) {
	merged := &manifest.Manifest{}
	for _, filePath := range files {
		m, err := manifest.LoadFile(filePath)
		if err != nil {
			return nil, err
		}
		merged.Directives = append(merged.Directives, m.Directives...)
	}
	return merged, nil
}

func newPrintCmd(rootOpts *rootOptions) *cobra.Command {
	var sortArguments bool

	cmd := &cobra.Command{
		Use:   "print",
		Short: "Print directive declarations as SDL",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			m, err := loadManifests(rootOpts.files)
			if err != nil {
				return err
			}

			dc := descriptors.NewDescriptorContext(ctx, nil)
			dirDefs, err := m.Build(dc, &descriptors.CompileOptions{
				SortArguments: sortArguments,
			})
			if err != nil {
				logr.FromContextOrDiscard(ctx).Error(err, "failed to build directives")
				return err
			}

			descriptors.FormatDirectives(cmd.OutOrStdout(), dirDefs)
			return nil
		},
	}
	cmd.Flags().BoolVar(&sortArguments, "sort", false, "sort arguments by name")

	return cmd
}

func newDumpCmd(rootOpts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "dump",
		Short: "Dump finalized definitions as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := loadManifests(rootOpts.files)
			if err != nil {
				return err
			}

			dc := descriptors.NewDescriptorContext(cmd.Context(), nil)
			defs, err := m.Definitions(dc)
			if err != nil {
				return err
			}

			return manifest.Dump(cmd.OutOrStdout(), defs)
		},
	}
}
