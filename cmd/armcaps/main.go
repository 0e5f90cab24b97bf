package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/armbits/armcaps"
	"github.com/leodido/structcli"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/thediveo/enumflag/v2"
)

// Build metadata injected via ldflags. When built without ldflags these
// remain at their zero values and the version command omits them.
var (
	version = ""
	commit  = ""
	date    = ""
)

func main() {
	root := &cobra.Command{
		Use:   "armcaps",
		Short: "ARM crypto capability detection",
		Long: `armcaps detects the ARM/AArch64 instruction-set extensions used by
accelerated cryptographic routines (NEON, AES, PMULL, SHA-256, SHA-512).

It reports which capabilities the running CPU offers, distinguishing
compile-time guaranteed features from dynamically detected ones. Use it to
verify a deployment target before enabling hardware-accelerated crypto paths.`,
		SilenceUsage: true,
	}

	root.AddCommand(probeCmd())
	root.AddCommand(checkCmd())
	root.AddCommand(cpuinfoCmd())
	root.AddCommand(versionCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// ProbeOptions defines flags for the probe subcommand.
type ProbeOptions struct {
	JSON bool `flag:"json" flagshort:"j" flagdescr:"Output in JSON format"`
}

func (o *ProbeOptions) Attach(c *cobra.Command) error {
	return structcli.Define(c, o)
}

func probeCmd() *cobra.Command {
	opts := &ProbeOptions{}

	cmd := &cobra.Command{
		Use:   "probe",
		Short: "Detect all capabilities and display results",
		PreRunE: func(c *cobra.Command, args []string) error {
			return structcli.Unmarshal(c, opts)
		},
		RunE: func(c *cobra.Command, args []string) error {
			r := armcaps.Snapshot()

			if opts.JSON {
				return printJSON(r)
			}

			fmt.Print(r)
			return nil
		},
	}

	if err := opts.Attach(cmd); err != nil {
		panic(err)
	}
	return cmd
}

// CheckOptions defines flags for the check subcommand.
type CheckOptions struct {
	Require featureRequirements `flag:"require" flagshort:"r" flagdescr:"Required capabilities (see available capabilities above)" flagrequired:"true" flagcustom:"true"`
	JSON    bool                `flag:"json" flagshort:"j" flagdescr:"Output in JSON format"`
}

func (o *CheckOptions) Attach(c *cobra.Command) error {
	return structcli.Define(c, o)
}

func (o *CheckOptions) DefineRequire(name, short, descr string, structField reflect.StructField, fieldValue reflect.Value) (pflag.Value, string) {
	fieldPtr := fieldValue.Addr().Interface().(*featureRequirements)
	*fieldPtr = nil
	return fieldPtr, descr
}

func (o *CheckOptions) DecodeRequire(input any) (any, error) {
	s, ok := input.(string)
	if !ok {
		return input, nil
	}

	return parseFeatureRequirements(s)
}

func (o *CheckOptions) CompleteRequire(c *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	directive := cobra.ShellCompDirectiveNoFileComp | cobra.ShellCompDirectiveNoSpace

	prefix := ""
	current := toComplete
	if i := strings.LastIndex(toComplete, ","); i >= 0 {
		prefix = toComplete[:i+1]
		current = toComplete[i+1:]
	}

	selected := map[string]struct{}{}
	for _, part := range strings.Split(prefix, ",") {
		selected[strings.ToLower(strings.TrimSpace(part))] = struct{}{}
	}

	var candidates []string
	for _, name := range armcaps.FeatureNames() {
		if _, taken := selected[name]; taken {
			continue
		}
		if strings.HasPrefix(name, strings.ToLower(current)) {
			candidates = append(candidates, prefix+name)
		}
	}
	return candidates, directive
}

func checkCmd() *cobra.Command {
	opts := &CheckOptions{}

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check specific capability requirements",
		Long:  checkLongDescription(),
		PreRunE: func(c *cobra.Command, args []string) error {
			return structcli.Unmarshal(c, opts)
		},
		RunE: func(c *cobra.Command, args []string) error {
			if len(opts.Require) == 0 {
				return fmt.Errorf("no capabilities specified")
			}

			err := armcaps.Require(opts.Require...)
			if err != nil {
				var ue *armcaps.UnavailableError
				if errors.As(err, &ue) {
					if opts.JSON {
						return printJSON(map[string]any{
							"ok":      false,
							"feature": ue.Feature,
						})
					}
					fmt.Fprintf(os.Stderr, "FAIL: %s\n", ue)
					os.Exit(1)
				}
				return err
			}

			if opts.JSON {
				return printJSON(map[string]any{"ok": true})
			}
			fmt.Println("OK: all requirements satisfied")
			return nil
		},
	}

	if err := opts.Attach(cmd); err != nil {
		panic(err)
	}
	return cmd
}

// CPUInfoOptions defines flags for the cpuinfo subcommand.
type CPUInfoOptions struct {
	JSON bool `flag:"json" flagshort:"j" flagdescr:"Output in JSON format"`
}

func (o *CPUInfoOptions) Attach(c *cobra.Command) error {
	return structcli.Define(c, o)
}

func cpuinfoCmd() *cobra.Command {
	opts := &CPUInfoOptions{}

	cmd := &cobra.Command{
		Use:   "cpuinfo",
		Short: "Display the kernel's advertised CPU feature strings",
		PreRunE: func(c *cobra.Command, args []string) error {
			return structcli.Unmarshal(c, opts)
		},
		RunE: func(c *cobra.Command, args []string) error {
			features, err := armcaps.CPUInfoFeatures()
			if err != nil {
				return err
			}

			if opts.JSON {
				return printJSON(map[string]any{"features": features})
			}

			if len(features) == 0 {
				fmt.Println("(no feature strings advertised)")
				return nil
			}
			fmt.Println(strings.Join(features, " "))
			return nil
		},
	}

	if err := opts.Attach(cmd); err != nil {
		panic(err)
	}
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show tool version and capability word",
		RunE: func(c *cobra.Command, args []string) error {
			if version != "" {
				fmt.Printf("armcaps %s", version)
				if commit != "" {
					fmt.Printf(" (%s)", commit)
				}
				if date != "" {
					fmt.Printf(" built %s", date)
				}
				fmt.Println()
			} else {
				fmt.Println("armcaps (dev)")
			}

			r := armcaps.Snapshot()
			fmt.Printf("Capability word: %#08x\n", r.Word)
			return nil
		},
	}
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func availableFeatures() string {
	return strings.Join(armcaps.FeatureNames(), ", ")
}

func checkLongDescription() string {
	return fmt.Sprintf(`Check that the CPU supports all required capabilities.
Exits with code 0 if all requirements are met, 1 if any are missing.

Available capabilities:
  %s`, availableFeatures())
}

type featureRequirements []armcaps.Feature

var featureIdentifierMap = func() map[armcaps.Feature][]string {
	ids := make(map[armcaps.Feature][]string, len(armcaps.FeatureValues()))
	for _, f := range armcaps.FeatureValues() {
		ids[f] = []string{f.String()}
	}
	return ids
}()

func (r *featureRequirements) String() string {
	names := make([]string, 0, len(*r))
	for _, f := range *r {
		names = append(names, f.String())
	}

	return strings.Join(names, ",")
}

func (r *featureRequirements) Set(input string) error {
	features, err := parseFeatureRequirements(input)
	if err != nil {
		return err
	}

	*r = append(*r, features...)
	return nil
}

func (r *featureRequirements) Type() string {
	return "capability"
}

func parseFeatureRequirements(input string) (featureRequirements, error) {
	if strings.TrimSpace(input) == "" {
		return featureRequirements{}, nil
	}

	parts := strings.Split(input, ",")
	features := make(featureRequirements, 0, len(parts))
	for _, part := range parts {
		name := strings.TrimSpace(part)
		if name == "" {
			continue
		}

		var feature armcaps.Feature
		enumValue := enumflag.New(&feature, "armcaps.Feature", featureIdentifierMap, enumflag.EnumCaseInsensitive)
		if err := enumValue.Set(name); err != nil {
			return nil, fmt.Errorf("unknown capability: %q (available: %s)", name, availableFeatures())
		}

		features = append(features, feature)
	}

	return features, nil
}
