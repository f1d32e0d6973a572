package main

import (
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/gubarz/mdhtml/block"
	"github.com/gubarz/mdhtml/internal/config"
	"github.com/gubarz/mdhtml/internal/output"
	"github.com/gubarz/mdhtml/internal/pretty"
	"github.com/gubarz/mdhtml/internal/source"
	"github.com/gubarz/mdhtml/internal/ui"
	"github.com/gubarz/mdhtml/markdown"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var version = "0.1.0"

var blocksCmd = &cobra.Command{
	Use:   "blocks [file]",
	Short: "List the blocks of a document",
	Long: `Splits a document into blocks and prints one line per block:
its position, its type and the first line of its source.

Blocks that fail to render are marked with "!" and the reason
is printed to stderr.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBlocks,
}

var previewCmd = &cobra.Command{
	Use:   "preview [file]",
	Short: "Browse the blocks of a document interactively",
	Long: `Opens a terminal browser over the blocks of a document.

Type to filter by text or block type, Tab switches the preview
between rendered HTML and Markdown source, Ctrl+Y copies the
HTML of the selected block.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPreview,
}

var rootCmd = &cobra.Command{
	Use:   "mdhtml [file...]",
	Short: "Convert Markdown to HTML",
	Long: `Converts Markdown documents to HTML.

Reads each file (or stdin when no file or "-" is given), renders
headings, paragraphs, code fences, quotes and lists with inline
bold, italic, code, links and images, and prints, copies or writes
the resulting HTML.`,
	Args: cobra.ArbitraryArgs,
	RunE: runRender,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.AddCommand(blocksCmd)
	rootCmd.AddCommand(previewCmd)

	rootCmd.PersistentFlags().Bool("normalize", false, "NFC-normalize input before parsing")
	rootCmd.PersistentFlags().String("trace", "", "Trace parser decisions at level: Debug, Info, Error")

	rootCmd.Flags().StringP("output", "o", "", "Output mode: print, copy, file")
	rootCmd.Flags().Bool("print", false, "Print HTML (shorthand for -o print)")
	rootCmd.Flags().Bool("copy", false, "Copy HTML (shorthand for -o copy)")
	rootCmd.Flags().StringP("out-file", "w", "", "Write HTML to this file (implies -o file)")
	rootCmd.Flags().BoolP("pretty", "p", false, "Indent the HTML output")
	rootCmd.Flags().Bool("skip-errors", false, "Skip blocks that fail to render instead of aborting")
	rootCmd.Flags().BoolP("benchmark", "b", false, "Benchmark rendering and exit")

	viper.BindPFlag("output", rootCmd.Flags().Lookup("output"))
	viper.BindPFlag("pretty", rootCmd.Flags().Lookup("pretty"))
	viper.BindPFlag("normalize", rootCmd.PersistentFlags().Lookup("normalize"))
	viper.BindPFlag("trace", rootCmd.PersistentFlags().Lookup("trace"))
}

func initConfig() {
	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
	}
	if err := config.InitTracing(config.GetTrace()); err != nil {
		fmt.Fprintf(os.Stderr, "Error setting up tracing: %v\n", err)
	}
}

func newLoader() *source.Loader {
	return source.NewLoader().WithNormalize(config.GetNormalize())
}

func loadOne(args []string) (*source.Document, error) {
	path := source.StdinName
	if len(args) > 0 {
		path = args[0]
	}
	return newLoader().Load(path)
}

func runRender(cmd *cobra.Command, args []string) error {
	// Handle output mode flags
	if p, _ := cmd.Flags().GetBool("print"); p {
		config.SetOutput(string(output.ModePrint))
	} else if c, _ := cmd.Flags().GetBool("copy"); c {
		config.SetOutput(string(output.ModeCopy))
	} else if w, _ := cmd.Flags().GetString("out-file"); w != "" {
		config.SetOutFile(w)
		config.SetOutput(string(output.ModeFile))
	}

	if skip, _ := cmd.Flags().GetBool("skip-errors"); skip {
		config.SetOnError(config.OnErrorSkip)
	}

	benchmark, _ := cmd.Flags().GetBool("benchmark")
	start := time.Now()

	docs, err := newLoader().LoadAll(args)
	if err != nil {
		return fmt.Errorf("load error: %w", err)
	}

	mode := output.Mode(config.GetOutput())
	outFile := config.GetOutFile()
	if mode == output.ModeFile && outFile != "" && len(docs) > 1 {
		return fmt.Errorf("out_file %s given for %d documents", outFile, len(docs))
	}

	rendered := make([]string, 0, len(docs))
	for _, doc := range docs {
		html, err := renderDocument(doc)
		if err != nil {
			return err
		}
		rendered = append(rendered, html)
	}

	if benchmark {
		elapsed := time.Since(start)
		// Force GC and get memory stats
		runtime.GC()
		var m runtime.MemStats
		runtime.ReadMemStats(&m)
		bytes := 0
		for _, html := range rendered {
			bytes += len(html)
		}
		fmt.Printf("Rendered %d documents (%d bytes of HTML) in %v\n", len(docs), bytes, elapsed)
		fmt.Printf("Memory: Alloc=%dMB, TotalAlloc=%dMB, Sys=%dMB, HeapObjects=%d\n",
			m.Alloc/1024/1024, m.TotalAlloc/1024/1024, m.Sys/1024/1024, m.HeapObjects)
		return nil
	}

	w := output.NewWriter(os.Stdout)
	if mode != output.ModeFile {
		return w.OutputWithMode(strings.Join(rendered, "\n"), mode, "")
	}
	for i, doc := range docs {
		path := outFile
		if path == "" {
			path = doc.HTMLPath()
		}
		if path == "" {
			return fmt.Errorf("file output for %s needs --out-file", doc.Name())
		}
		if err := w.OutputWithMode(rendered[i], output.ModeFile, path); err != nil {
			return fmt.Errorf("write error: %w", err)
		}
	}
	return nil
}

// renderDocument converts one document, honoring the on_error and pretty settings
func renderDocument(doc *source.Document) (string, error) {
	var handler block.ErrorHandler
	if config.GetOnError() == config.OnErrorSkip {
		handler = func(err *block.Error) error {
			fmt.Fprintf(os.Stderr, "Warning: %s: skipping %v\n", doc.Name(), err)
			return nil
		}
	}

	html, err := markdown.ToHTMLWith(doc.Text, handler)
	if err != nil {
		return "", fmt.Errorf("%s: %w", doc.Name(), err)
	}
	if !config.GetPretty() {
		return html, nil
	}
	formatted, err := pretty.Format(html)
	if err != nil {
		return "", fmt.Errorf("%s: formatting: %w", doc.Name(), err)
	}
	return strings.TrimSuffix(formatted, "\n"), nil
}

func runBlocks(cmd *cobra.Command, args []string) error {
	doc, err := loadOne(args)
	if err != nil {
		return fmt.Errorf("load error: %w", err)
	}

	failed := 0
	for i, src := range block.Split(doc.Text) {
		kind := block.Classify(src)
		marker := " "
		if _, err := block.Build(src, kind); err != nil {
			marker = "!"
			failed++
			fmt.Fprintf(os.Stderr, "block %d: %v\n", i+1, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s%4d  %-15s %s\n", marker, i+1, kind, firstLine(src))
	}

	if failed > 0 {
		return fmt.Errorf("%d blocks of %s failed to render", failed, doc.Name())
	}
	return nil
}

func runPreview(cmd *cobra.Command, args []string) error {
	doc, err := loadOne(args)
	if err != nil {
		return fmt.Errorf("load error: %w", err)
	}
	return ui.Run(doc.Name(), doc.Text, output.NewWriter(os.Stdout).Clipboard())
}

func firstLine(s string) string {
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		return s[:idx]
	}
	return s
}

func main() {
	rootCmd.Version = version
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
