package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/go-jsexpr/jsexpr/pkg/jsexpr"
	"github.com/spf13/cobra"
)

var (
	evalExpr   string
	evalNoCase bool
	maxDepth   int
	slabSize   int
	varsPath   string
)

var evalCmd = &cobra.Command{
	Use:   "eval [file]",
	Short: "Evaluate an expression",
	Long: `Evaluate a single expression from the JavaScript-compatible subset
jsexpr implements and print its result.

The expression comes from -e, a file argument, or stdin - in that order
of preference. Root identifiers referenced by the expression resolve
against --vars, a JSON object file mapping names to values (nested
objects and arrays are exposed as lazily-projected Json values).

Examples:
  jsexpr eval -e "1 + 2 * (10 * 20)"
  echo "a.b.c" | jsexpr eval --vars bindings.json
  jsexpr eval --no-case -e "'HI' < 'hi'"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEval,
}

func init() {
	rootCmd.AddCommand(evalCmd)

	evalCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline text instead of reading from file or stdin")
	evalCmd.Flags().BoolVar(&evalNoCase, "no-case", false, "case-insensitive string comparison and ordering")
	evalCmd.Flags().IntVar(&maxDepth, "max-depth", 0, "sub-expression recursion limit (0 = default 100)")
	evalCmd.Flags().IntVar(&slabSize, "slab-size", 0, "arena slab size in bytes (0 = default 1024)")
	evalCmd.Flags().StringVar(&varsPath, "vars", "", "JSON file of root identifier bindings")
}

func runEval(cmd *cobra.Command, args []string) error {
	input, _, err := readExprOrStdin(args)
	if err != nil {
		return err
	}

	ref, err := varsRefFunc(varsPath)
	if err != nil {
		return err
	}

	opts := []jsexpr.Option{
		jsexpr.WithNoCase(evalNoCase),
		jsexpr.WithMaxDepth(maxDepth),
		jsexpr.WithSlabSize(slabSize),
	}
	if ref != nil {
		opts = append(opts, jsexpr.WithRef(ref))
	}

	engine, err := jsexpr.New(opts...)
	if err != nil {
		return fmt.Errorf("failed to build engine: %w", err)
	}

	result, evalErr := engine.Eval(input)
	fmt.Println(jsexpr.Stringify(result))
	if evalErr != nil {
		return fmt.Errorf("evaluation error: %w", evalErr)
	}
	return nil
}

// readExprOrStdin resolves the -e flag, a single file argument, or stdin
// (in that order) into the text to evaluate - the teacher's run.go -e/file
// duality, extended with a stdin fallback per this command's stdin support.
func readExprOrStdin(args []string) (input, source string, err error) {
	if evalExpr != "" {
		return evalExpr, "<eval>", nil
	}
	if len(args) == 1 {
		content, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", fmt.Errorf("failed to read file %s: %w", args[0], err)
		}
		return string(content), args[0], nil
	}
	content, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(content), "<stdin>", nil
}

// varsRefFunc builds a RefFunc resolving root identifiers from a flat JSON
// object file: scalars convert directly, objects/arrays are re-encoded and
// exposed as Json-kind values so chain access still lazily projects through
// internal/jsonview.
func varsRefFunc(path string) (jsexpr.RefFunc, error) {
	if path == "" {
		return nil, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read vars file %s: %w", path, err)
	}
	var vars map[string]any
	if err := json.Unmarshal(raw, &vars); err != nil {
		return nil, fmt.Errorf("failed to parse vars file %s: %w", path, err)
	}
	return func(this, ident jsexpr.Value, udata any) jsexpr.Value {
		if !jsexpr.IsGlobal(this) {
			return jsexpr.Undefined()
		}
		v, ok := vars[ident.Str()]
		if !ok {
			return jsexpr.Undefined()
		}
		return goValueToJS(v)
	}, nil
}

func goValueToJS(v any) jsexpr.Value {
	switch t := v.(type) {
	case nil:
		return jsexpr.Null()
	case bool:
		return jsexpr.Bool(t)
	case float64:
		return jsexpr.Float(t)
	case string:
		return jsexpr.String(t)
	default:
		encoded, err := json.Marshal(t)
		if err != nil {
			return jsexpr.Undefined()
		}
		return jsexpr.JSON(string(encoded))
	}
}
