package cli

import (
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/sumsolve/generator"
)

// GenerateCmd returns "generate", the instance sweep writer.
func GenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a sweep of subset-sum instances with planted solutions",
		Long: `Generate writes one instance per (n, b) pair, n stepping by 2 from
--start-n to --end-n and b from --start-b to --end-b. Each target is the sum
of a random half of the items.`,
		Args: rangeArgs(0, 0),
		RunE: runGenerate,
	}
	cmd.Flags().Int64P("seed", "s", 0, "RNG seed (default: time based)")
	cmd.Flags().StringP("dir", "d", ".", "directory receiving the instances")
	cmd.Flags().String("uniq", "", "file-name uniquifier")
	cmd.Flags().String("prefix", generator.DefaultPrefix, "file-name prefix")
	cmd.Flags().Int("start-n", 2, "first set size (even)")
	cmd.Flags().Int("end-n", 2, "last set size (even)")
	cmd.Flags().Int("start-b", 1, "first bit width")
	cmd.Flags().Int("end-b", 2, "last bit width")
	cmd.Flags().BoolP("print", "p", false, "print the instances and their densities instead of writing files")

	return cmd
}

type generateFlags struct {
	seed         int64
	dir, uniq    string
	prefix       string
	startN, endN int
	startB, endB int
	printOnly    bool
}

func getGenerateFlags(cmd *cobra.Command) (generateFlags, error) {
	var (
		gf  generateFlags
		err error
		fs  = cmd.Flags()
	)
	if gf.seed, err = getFlag(fs, "seed", (*pflag.FlagSet).GetInt64); err != nil {
		return gf, err
	}
	if !fs.Changed("seed") {
		gf.seed = clock().UnixNano()
	}
	if gf.dir, err = getFlag(fs, "dir", (*pflag.FlagSet).GetString); err != nil {
		return gf, err
	}
	if gf.uniq, err = getFlag(fs, "uniq", (*pflag.FlagSet).GetString); err != nil {
		return gf, err
	}
	if gf.prefix, err = getFlag(fs, "prefix", (*pflag.FlagSet).GetString); err != nil {
		return gf, err
	}
	for name, dst := range map[string]*int{
		"start-n": &gf.startN, "end-n": &gf.endN,
		"start-b": &gf.startB, "end-b": &gf.endB,
	} {
		if *dst, err = getFlag(fs, name, (*pflag.FlagSet).GetInt); err != nil {
			return gf, err
		}
	}
	gf.printOnly, err = getFlag(fs, "print", (*pflag.FlagSet).GetBool)

	return gf, err
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	s, err := setup(cmd)
	if err != nil {
		return err
	}
	gf, err := getGenerateFlags(cmd)
	if err != nil {
		return err
	}
	specs, err := generator.Sweep(gf.startN, gf.endN, gf.startB, gf.endB)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}

	out := cmd.OutOrStdout()
	rng := rand.New(rand.NewSource(gf.seed))
	s.log.Debug("generating instances", "count", len(specs), "seed", gf.seed)

	instances := make([]generator.Instance, 0, len(specs))
	for _, spec := range specs {
		in, err := generator.Generate(spec.N, spec.Bits, rng)
		if err != nil {
			return fmt.Errorf("n=%d b=%d: %w", spec.N, spec.Bits, err)
		}
		instances = append(instances, in)
		if gf.printOnly {
			fmt.Fprintf(out, "%s: target=%d items=%v planted=%v\n",
				generator.FileName(in, gf.uniq, gf.prefix), in.Target, in.Items, in.Planted)
			continue
		}
		path, err := generator.WriteFile(gf.dir, in, gf.uniq, gf.prefix)
		if err != nil {
			return err
		}
		s.log.Info("instance written", "path", path, "n", in.N, "bits", in.Bits)
	}

	if gf.printOnly {
		st := generator.Densities(instances)
		fmt.Fprintln(out, "------------------------")
		fmt.Fprintf(out, "Max density: %g\n", st.Max)
		fmt.Fprintf(out, "Min density: %g\n", st.Min)
		fmt.Fprintf(out, "Avg density: %g\n", st.Avg)
	}
	fmt.Fprintf(out, "%d instances created.\n", len(instances))

	return nil
}
