package pipeline

import (
	"fmt"
	"time"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/miho-ichinose/trsgen/internal/config"
	"github.com/miho-ichinose/trsgen/internal/render"
	"github.com/miho-ichinose/trsgen/internal/schema"
	"github.com/miho-ichinose/trsgen/internal/specdoc"
)

// Pipeline orchestrates one generation run: read the design sheet, build
// and validate the schema, render both artifacts from the same schema,
// write both files or neither. It is the only entry point callers use;
// each run builds its own schema from scratch, so concurrent runs share
// nothing.
type Pipeline struct {
	cfg *config.Config
	fs  afero.Fs
	log *zap.SugaredLogger
}

func New(cfg *config.Config, fs afero.Fs, log *zap.SugaredLogger) *Pipeline {
	return &Pipeline{cfg: cfg, fs: fs, log: log}
}

// Request identifies the design sheet for one run. TableName overrides
// whatever the sheet's metadata carries; an empty Sheet selects the
// workbook's first sheet.
type Request struct {
	SpecPath  string
	Sheet     string
	TableName string
}

// Result is what the caller gets back from a run. SQL and YAML are only
// populated when validation passed; SQLPath and YAMLPath only when the
// files were actually written.
type Result struct {
	Success   bool
	TableName string
	Findings  schema.Findings
	SQL       string
	YAML      string
	SQLPath   string
	YAMLPath  string
}

// Load runs the front half of the pipeline: read the workbook and build
// the schema with its per-row parse findings. The inspect command stops
// here.
func (p *Pipeline) Load(req Request) (*schema.TableSchema, schema.Findings, error) {
	doc, err := specdoc.ReadFile(req.SpecPath, req.Sheet)
	if err != nil {
		return nil, nil, err
	}
	p.log.Debugw("design sheet read", "sheet", doc.Sheet, "rows", len(doc.Rows))

	s, findings := schema.Build(doc, req.TableName)
	s.Description = p.cfg.ModelDescription
	return s, findings, nil
}

// Check runs everything up to and including validation, writing nothing.
func (p *Pipeline) Check(req Request) (*Result, error) {
	s, buildFindings, err := p.Load(req)
	if err != nil {
		return nil, err
	}
	findings := schema.Validate(s, buildFindings)
	return &Result{
		Success:   !findings.HasErrors(),
		TableName: s.TableName,
		Findings:  findings,
	}, nil
}

// Run executes the full pipeline. When validation reports any error
// finding the run fails closed: Success is false, no file is touched and
// the findings carry the complete report. Only a structurally unreadable
// workbook (specdoc.SourceFormatError) surfaces as an error.
func (p *Pipeline) Run(req Request) (*Result, error) {
	start := time.Now()

	s, buildFindings, err := p.Load(req)
	if err != nil {
		return nil, err
	}

	res := &Result{TableName: s.TableName}
	res.Findings = schema.Validate(s, buildFindings)
	if res.Findings.HasErrors() {
		errs, warns := res.Findings.Count()
		p.log.Infow("validation failed, no artifacts written",
			"table", s.TableName, "errors", errs, "warnings", warns)
		return res, nil
	}

	dialect, err := render.GetDialect(p.cfg.Dialect)
	if err != nil {
		return nil, err
	}

	sourceTable := p.cfg.SourceTable
	if sourceTable == "" {
		sourceTable = s.TableName
	}

	// Both artifacts render from the same immutable schema, never from
	// each other; that is what keeps their column sequences identical.
	res.SQL, err = render.RenderSQL(s, dialect, render.SQLParams{
		SourceSchema: p.cfg.SourceSchema,
		SourceTable:  sourceTable,
	})
	if err != nil {
		return nil, fmt.Errorf("rendering SQL for table %s: %w", s.TableName, err)
	}
	res.YAML, err = render.RenderYAML(s)
	if err != nil {
		return nil, fmt.Errorf("rendering YAML for table %s: %w", s.TableName, err)
	}

	res.SQLPath, res.YAMLPath, err = writeArtifacts(p.fs, p.cfg.OutputDir, s.TableName, res.SQL, res.YAML)
	if err != nil {
		return nil, fmt.Errorf("writing artifacts for table %s: %w", s.TableName, err)
	}

	res.Success = true
	_, warns := res.Findings.Count()
	p.log.Infow("artifacts generated",
		"table", s.TableName,
		"columns", len(s.Columns),
		"warnings", warns,
		"sql", res.SQLPath,
		"yaml", res.YAMLPath,
		"elapsed", time.Since(start))
	return res, nil
}
