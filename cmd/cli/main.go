package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"fountains/adapters/bitcodec"
	"fountains/adapters/excel"
	"fountains/adapters/stats"
	"fountains/app"
	"fountains/domain/fountain"
	"fountains/internal/testkit"
	"fountains/ports"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "fountains-cli",
		Short: "Fountains CLI for deterministic fixture generation and spec verification",
	}

	rootCmd.AddCommand(
		newGenerateCmd(),
		newEncodeCmd(),
		newVerifyCmd(),
		newExportCmd(),
		newDiagnoseCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type seedFlags struct {
	seedHex string
	seedInt int64
}

func (f *seedFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.seedHex, "seed-hex", "", "Seed as hex bytes (empty for the default seed)")
	cmd.Flags().Int64Var(&f.seedInt, "seed", -1, "Seed as a non-negative integer (overrides --seed-hex)")
}

func (f *seedFlags) resolve() (fountain.Seed, error) {
	if f.seedInt >= 0 {
		return fountain.SeedFromInt(f.seedInt)
	}
	return fountain.SeedFromHex(f.seedHex)
}

func newGenerateCmd() *cobra.Command {
	var seeds seedFlags
	var length, limit, shards int

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate deterministic pseudorandom test inputs",
		Long: `Generate a bounded corpus of deterministic pseudorandom byte vectors.

The same seed, length, and limit always reproduce the same corpus.

Example: fountains-cli generate --length 8 --limit 16 --seed 123`,
		RunE: func(cmd *cobra.Command, args []string) error {
			seed, err := seeds.resolve()
			if err != nil {
				return err
			}
			p := fountain.Params{Seed: seed, Length: length, Limit: limit}

			svc := app.NewFixtureService()
			var vectors [][]byte
			if shards > 1 {
				vectors, err = svc.GenerateParallel(cmd.Context(), p, shards)
			} else {
				vectors, err = svc.Generate(cmd.Context(), p)
			}
			if err != nil {
				return err
			}

			for _, v := range vectors {
				fmt.Println(hex.EncodeToString(v))
			}
			return nil
		},
	}

	seeds.register(cmd)
	cmd.Flags().IntVar(&length, "length", 32, "Byte width of each generated vector")
	cmd.Flags().IntVar(&limit, "limit", 16, "Number of vectors to generate")
	cmd.Flags().IntVar(&shards, "shards", 1, "Worker count for parallel generation")

	return cmd
}

func newEncodeCmd() *cobra.Command {
	var seeds seedFlags
	var length, limit int

	cmd := &cobra.Command{
		Use:   "encode [function]",
		Short: "Encode a reference function's behavior as a bit-string specification",
		Long: `Apply a built-in reference function to each generated input and record one
behavior bit per test case, packed as hex.

Built-in functions: ` + strings.Join(testkit.FunctionNames(), ", ") + `

Example: fountains-cli encode sum --length 4 --limit 32`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fn, ok := testkit.Function(args[0])
			if !ok {
				return fmt.Errorf("unknown function %q (available: %s)", args[0], strings.Join(testkit.FunctionNames(), ", "))
			}
			seed, err := seeds.resolve()
			if err != nil {
				return err
			}
			p := fountain.Params{Seed: seed, Length: length, Limit: limit}

			spec, err := fountain.Encode(p, fn)
			if err != nil {
				return err
			}

			return printJSON(map[string]interface{}{
				"function":    args[0],
				"seed_hex":    seed.Hex(),
				"length":      length,
				"bits":        spec.Len(),
				"packed_hex":  bitcodec.New().Encode(spec),
				"fingerprint": spec.Fingerprint(),
			})
		},
	}

	seeds.register(cmd)
	cmd.Flags().IntVar(&length, "length", 32, "Byte width of each generated vector")
	cmd.Flags().IntVar(&limit, "limit", 256, "Number of test cases to encode")

	return cmd
}

func newVerifyCmd() *cobra.Command {
	var seeds seedFlags
	var length, bitCount int

	cmd := &cobra.Command{
		Use:   "verify [function] [bits-hex]",
		Short: "Verify a reference function against a bit-string specification",
		Long: `Re-run the deterministic test cases a specification was encoded over and
compare each recorded bit against the function's behavior.

The specification's bit count fixes the number of test cases. Pass
--bit-count when it is not a multiple of eight.

Example: fountains-cli verify sum cf --length 3`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fn, ok := testkit.Function(args[0])
			if !ok {
				return fmt.Errorf("unknown function %q (available: %s)", args[0], strings.Join(testkit.FunctionNames(), ", "))
			}
			seed, err := seeds.resolve()
			if err != nil {
				return err
			}

			codec := bitcodec.New()
			var spec fountain.Specification
			if bitCount > 0 {
				spec, err = codec.DecodeBits(args[1], bitCount)
			} else {
				spec, err = codec.Decode(args[1])
			}
			if err != nil {
				return err
			}

			p := fountain.Params{Seed: seed, Length: length}
			results, err := fountain.Verify(p, fn, spec)
			if err != nil {
				return err
			}

			passed := 0
			firstFailed := -1
			for i, ok := range results {
				if ok {
					passed++
				} else if firstFailed < 0 {
					firstFailed = i
				}
			}

			return printJSON(map[string]interface{}{
				"function":           args[0],
				"bits":               spec.Len(),
				"passed":             passed,
				"failed":             len(results) - passed,
				"first_failed_index": firstFailed,
			})
		},
	}

	seeds.register(cmd)
	cmd.Flags().IntVar(&length, "length", 32, "Byte width of each generated vector")
	cmd.Flags().IntVar(&bitCount, "bit-count", 0, "Exact bit count when not a multiple of eight")

	return cmd
}

func newExportCmd() *cobra.Command {
	var seeds seedFlags
	var length, limit int
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a generated fixture corpus to a spreadsheet",
		Long: `Generate a deterministic fixture corpus and write it to an .xlsx file
for review outside the system.

Example: fountains-cli export --length 8 --limit 64 --out fixtures.xlsx`,
		RunE: func(cmd *cobra.Command, args []string) error {
			seed, err := seeds.resolve()
			if err != nil {
				return err
			}
			p := fountain.Params{Seed: seed, Length: length, Limit: limit}

			vectors, err := app.NewFixtureService().Generate(cmd.Context(), p)
			if err != nil {
				return err
			}

			exporter := excel.NewExporter()
			if err := exporter.ExportFixtures(out, ports.FixtureExport{
				SeedHex: seed.Hex(),
				Length:  length,
				Vectors: vectors,
			}); err != nil {
				return err
			}

			fmt.Printf("Exported %d fixtures to %s\n", len(vectors), out)
			return nil
		},
	}

	seeds.register(cmd)
	cmd.Flags().IntVar(&length, "length", 32, "Byte width of each generated vector")
	cmd.Flags().IntVar(&limit, "limit", 64, "Number of vectors to export")
	cmd.Flags().StringVar(&out, "out", "fixtures.xlsx", "Output spreadsheet path")

	return cmd
}

func newDiagnoseCmd() *cobra.Command {
	var seeds seedFlags
	var length, limit int

	cmd := &cobra.Command{
		Use:   "diagnose",
		Short: "Check generated bytes for statistical uniformity",
		Long: `Generate a corpus and run a chi-squared goodness-of-fit test against the
uniform byte distribution. A failing report indicates the generator or its
configuration is broken.

Example: fountains-cli diagnose --length 32 --limit 64`,
		RunE: func(cmd *cobra.Command, args []string) error {
			seed, err := seeds.resolve()
			if err != nil {
				return err
			}
			p := fountain.Params{Seed: seed, Length: length, Limit: limit}

			vectors, err := app.NewFixtureService().Generate(cmd.Context(), p)
			if err != nil {
				return err
			}

			samples := make([]byte, 0, length*limit)
			for _, v := range vectors {
				samples = append(samples, v...)
			}

			report, err := stats.NewAnalyzer().Analyze(samples)
			if err != nil {
				return err
			}
			return printJSON(report)
		},
	}

	seeds.register(cmd)
	cmd.Flags().IntVar(&length, "length", 32, "Byte width of each generated vector")
	cmd.Flags().IntVar(&limit, "limit", 64, "Number of vectors to sample")

	return cmd
}

func printJSON(v interface{}) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
