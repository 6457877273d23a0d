// Package main provides the CLI entry point for exdash.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/ukaji3/exdash-go/internal/config"
	"github.com/ukaji3/exdash-go/internal/server"
	"github.com/ukaji3/exdash-go/pkg/exdash"
	"github.com/ukaji3/exdash-go/pkg/exdash/export"
	"github.com/ukaji3/exdash-go/pkg/exdash/models"
	"github.com/ukaji3/exdash-go/pkg/exdash/output"
	"github.com/ukaji3/exdash-go/pkg/exdash/render"
	"github.com/ukaji3/exdash-go/pkg/exdash/view"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	configPath string
	sheetName  string
	dataRange  string
	verbose    bool

	addr  string
	watch bool

	figuresOutput string
	exportOutput  string
	outDir        string
	pretty        bool
	columns       []string
	filters       []string
	sortBy        []string
	activeRow     int
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "exdash",
		Short: "Interactive dashboard over one spreadsheet table",
		Long: `exdash loads a sheet from an Excel workbook and serves a filterable,
sortable table with frequency bar charts and a parallel-categories diagram.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath, "Config file path")
	rootCmd.PersistentFlags().StringVar(&sheetName, "sheet", "", "Sheet to load (default: ArticlesByCategory or the first sheet)")
	rootCmd.PersistentFlags().StringVar(&dataRange, "range", "", "A1 range or defined name bounding the table")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	serveCmd := &cobra.Command{
		Use:   "serve [input.xlsx]",
		Short: "Serve the dashboard over HTTP",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runServe,
	}
	serveCmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from config)")
	serveCmd.Flags().BoolVar(&watch, "watch", false, "Reload the workbook when it changes")

	figuresCmd := &cobra.Command{
		Use:   "figures [input.xlsx]",
		Short: "Print bar charts, parcats and row styles as JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runFigures,
	}
	addViewFlags(figuresCmd)
	figuresCmd.Flags().StringSliceVar(&columns, "columns", nil, "Selected columns (default from config)")
	figuresCmd.Flags().IntVar(&activeRow, "active-row", -1, "Active row within the first page")
	figuresCmd.Flags().StringVarP(&figuresOutput, "output", "o", "", "Output file path (default: stdout)")
	figuresCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")

	renderCmd := &cobra.Command{
		Use:   "render [input.xlsx]",
		Short: "Render bar charts as PNG files",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runRender,
	}
	addViewFlags(renderCmd)
	renderCmd.Flags().StringSliceVar(&columns, "columns", nil, "Columns to chart (default from config)")
	renderCmd.Flags().StringVar(&outDir, "out-dir", "charts", "Directory for PNG files")

	exportCmd := &cobra.Command{
		Use:   "export [input.xlsx]",
		Short: "Write the filtered and sorted table as a workbook",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runExport,
	}
	addViewFlags(exportCmd)
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "export.xlsx", "Output workbook path")

	rootCmd.AddCommand(serveCmd, figuresCmd, renderCmd, exportCmd)
	return rootCmd
}

func addViewFlags(cmd *cobra.Command) {
	cmd.Flags().StringArrayVar(&filters, "filter", nil, "Column filter as column=expression (repeatable)")
	cmd.Flags().StringArrayVar(&sortBy, "sort", nil, "Sort as column[:asc|desc] (repeatable)")
}

// loadConfig reads the config file and applies the global flags.
func loadConfig(args []string) (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if len(args) > 0 {
		cfg.Data.Path = args[0]
	}
	if sheetName != "" {
		cfg.Data.Sheet = sheetName
	}
	if dataRange != "" {
		cfg.Data.Range = dataRange
	}
	return cfg, nil
}

func loadDataset(cfg *config.Config) (*models.Dataset, error) {
	ds, err := exdash.Load(cfg.Data.Path, cfg.LoadOptions())
	if err != nil {
		return nil, fmt.Errorf("load failed: %w", err)
	}
	return ds, nil
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}
	if addr != "" {
		cfg.Server.Addr = addr
	}
	if cmd.Flags().Changed("watch") {
		cfg.Data.Watch = watch
	}

	logger, err := cfg.NewLogger(verbose)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	store, err := exdash.NewStore(cfg.Data.Path, cfg.LoadOptions(), logger)
	if err != nil {
		return fmt.Errorf("load failed: %w", err)
	}
	srv, err := server.New(store, cfg, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return srv.ListenAndServe(ctx) })
	if cfg.Data.Watch {
		logger.Info("watching workbook", zap.String("path", cfg.Data.Path))
		g.Go(func() error { return store.Watch(ctx) })
	}
	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// figuresResult holds the three callback outputs for one table state.
type figuresResult struct {
	BarCharts []models.Graph       `json:"bar_charts"`
	Parcats   models.ParcatsFigure `json:"parcats"`
	RowStyles []models.StyleRule   `json:"row_styles"`
}

// deriveFromFlags loads the dataset and derives the view described by the
// command-line state.
func deriveFromFlags(args []string) (*config.Config, *models.Dataset, models.TableState, *view.View, error) {
	var state models.TableState
	cfg, err := loadConfig(args)
	if err != nil {
		return nil, nil, state, nil, err
	}
	ds, err := loadDataset(cfg)
	if err != nil {
		return nil, nil, state, nil, err
	}
	state, err = stateFromFlags(cfg)
	if err != nil {
		return nil, nil, state, nil, err
	}
	v, err := view.Derive(ds, state, cfg.ViewOptions())
	if err != nil {
		return nil, nil, state, nil, err
	}
	return cfg, ds, state, v, nil
}

func runFigures(cmd *cobra.Command, args []string) error {
	cfg, _, state, v, err := deriveFromFlags(args)
	if err != nil {
		return err
	}

	theme := cfg.Theme.WithDefaults()
	result := figuresResult{
		BarCharts: theme.BarCharts(v, state.SelectedColumns),
		Parcats:   theme.Parcats(v, state.SelectedColumns, v.Index(state.ActiveCell, 0, state.PageSize)),
		RowStyles: theme.RowStyles(state.ActiveCell),
	}

	jsonData, err := output.ToJSON(result, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	if figuresOutput != "" {
		if err := os.WriteFile(figuresOutput, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
	return nil
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, _, state, v, err := deriveFromFlags(args)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return err
	}

	for _, g := range cfg.Theme.WithDefaults().BarCharts(v, state.SelectedColumns) {
		filename := filepath.Join(outDir, chartFileName(g.ID))
		if err := writePNG(g, filename); err != nil {
			return fmt.Errorf("failed to render %s: %w", g.ID, err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), filename)
	}
	return nil
}

func writePNG(g models.Graph, filename string) (err error) {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return render.BarPNG(g, f)
}

func runExport(cmd *cobra.Command, args []string) (err error) {
	_, ds, _, v, err := deriveFromFlags(args)
	if err != nil {
		return err
	}
	f, err := os.Create(exportOutput)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	if err := export.WriteXLSX(ds, v, f); err != nil {
		return fmt.Errorf("export failed: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %d rows to %s\n", v.Len(), exportOutput)
	return nil
}

// stateFromFlags builds a table state from --columns, --filter, --sort and
// --active-row.
func stateFromFlags(cfg *config.Config) (models.TableState, error) {
	state := models.TableState{
		SelectedColumns: cfg.Table.SelectedColumns,
		PageSize:        cfg.Table.PageSize,
		Derived:         len(filters) > 0 || len(sortBy) > 0,
	}
	if len(columns) > 0 {
		state.SelectedColumns = columns
	}

	var err error
	if state.Filters, err = parseFilters(filters); err != nil {
		return state, err
	}
	if state.SortBy, err = parseSorts(sortBy); err != nil {
		return state, err
	}
	if activeRow >= 0 {
		state.ActiveCell = &models.Cell{Row: activeRow}
	}
	return state, nil
}
