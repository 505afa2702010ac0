package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gogpu/spvdebug"
	"github.com/gogpu/spvdebug/debug"
	"github.com/gogpu/spvdebug/internal/script"
	"github.com/gogpu/spvdebug/spirv"
	"github.com/spf13/cobra"
)

type app struct {
	logLevel string
	logger   *slog.Logger
	registry *spvdebug.Registry
}

func newRootCmd() *cobra.Command {
	a := &app{registry: spvdebug.NewRegistry()}

	rootCmd := &cobra.Command{
		Use:           "spvext",
		Short:         "Evaluate SPIR-V extended instructions",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var level slog.Level
			if err := level.UnmarshalText([]byte(a.logLevel)); err != nil {
				return fmt.Errorf("--log-level: %w", err)
			}
			a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			return nil
		},
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "Diagnostic level (debug, info, warn, error)")

	rootCmd.AddCommand(
		a.setsCmd(),
		a.listCmd(),
		a.evalCmd(),
		a.runCmd(),
		a.execCmd(),
	)
	return rootCmd
}

func (a *app) setsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sets",
		Short: "List the supported OpExtInstImport names",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range a.registry.Sets() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	}
}

func (a *app) listCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list [set]",
		Short: "List the instructions of a set",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := spirv.ExtGLSLStd450
			if len(args) == 1 {
				name = args[0]
			}
			set, err := a.registry.Import(name)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for op := uint32(0); op < uint32(set.Len()); op++ {
				supported := set.Supported(op)
				if !supported && !all {
					continue
				}
				status := "implemented"
				if !supported {
					status = "unsupported"
				}
				fmt.Fprintf(out, "%3d  %-24s %s\n", op, set.OpName(op), status)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&all, "all", "a", false, "Include unsupported instructions")
	return cmd
}

func (a *app) evalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eval <set> <inst> <operand>...",
		Short: "Evaluate one instruction on literal operands",
		Long: `Evaluate one instruction on literal operands.

Operands are written as a view prefix and up to four components:
  f:1,0.5,-2   float vector
  i:-3         signed scalar
  u:0xFFFFFFFE unsigned scalar`,
		Example: "  spvext eval GLSL.std.450 UMax u:0xFFFFFFFE,1 u:1,5",
		Args:    cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := a.registry.Import(args[0])
			if err != nil {
				return err
			}
			op, ok := set.Lookup(args[1])
			if !ok {
				return &debug.Error{Kind: debug.ErrUnknownInstruction, Set: args[0], Message: args[1]}
			}

			lane := debug.NewLane(0, a.logger)
			params := make([]debug.ID, 0, len(args)-2)
			for i, literal := range args[2:] {
				v, err := script.ParseValue(literal)
				if err != nil {
					return err
				}
				id := debug.ID(i + 1)
				lane.SetSrc(id, v)
				params = append(params, id)
			}

			result := debug.ID(len(params) + 1)
			if err := lane.ExecuteExtInst(set, result, op, params); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), lane.GetSrc(result))
			return nil
		},
	}
}

func (a *app) runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <script.toml>",
		Short: "Run a TOML debug script and print every lane's registers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := script.Load(args[0])
			if err != nil {
				return err
			}
			lanes, err := script.Run(cmd.Context(), a.registry, s, a.logger)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, lane := range lanes {
				fmt.Fprintf(out, "lane %d\n", lane.Index())
				printRegisters(cmd, lane)
			}
			return nil
		},
	}
}

func (a *app) execCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "exec <module.spv>",
		Short: "Execute every OpExtInst of a module over its constants",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			module, err := spirv.Parse(data)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			bindings, err := a.registry.Bind(module)
			if err != nil {
				return err
			}
			lane, err := spvdebug.NewLane(0, module, a.logger)
			if err != nil {
				return err
			}
			if err := bindings.Run(lane, module); err != nil {
				return err
			}
			printRegisters(cmd, lane)
			return nil
		},
	}
}

func printRegisters(cmd *cobra.Command, lane *debug.Lane) {
	out := cmd.OutOrStdout()
	for _, id := range lane.IDs() {
		fmt.Fprintf(out, "  %%%-6d %s\n", id, lane.GetSrc(id))
	}
}
