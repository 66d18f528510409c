package builder

import (
	"context"
	"fmt"
	"html/template"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/rstlight/rstlight/internal/logging"
	"github.com/rstlight/rstlight/pkg/config"
	"github.com/rstlight/rstlight/pkg/directives"
	"github.com/rstlight/rstlight/pkg/docast"
	"github.com/rstlight/rstlight/pkg/highlight"
	"github.com/rstlight/rstlight/pkg/nav"
	"github.com/rstlight/rstlight/pkg/parser"
	"github.com/rstlight/rstlight/pkg/render"
	"github.com/rstlight/rstlight/pkg/roles"
)

// Builder runs whole-site builds.
type Builder struct {
	parser *parser.Parser
	logger *log.Logger
}

// New creates a Builder. A nil logger falls back to the package default.
func New(logger *log.Logger) *Builder {
	if logger == nil {
		logger = logging.Default()
	}
	return &Builder{
		parser: parser.New(),
		logger: logger,
	}
}

// page carries one parsed document through the render pass.
type page struct {
	docPath    string
	sourcePath string
	doc        *docast.Document
}

// Build runs a full site build: discover sources, parse them all to
// populate the navigation registry, then render and write every page
// concurrently.
func (b *Builder) Build(ctx context.Context, opts Options) (*Result, error) {
	start := time.Now()
	cfg := opts.effectiveConfig()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	sourceDir, err := resolveSourceDir(opts.WorkingDir, cfg.SourceDir)
	if err != nil {
		return nil, err
	}
	outputDir, err := resolveOutputDir(opts.WorkingDir, cfg.OutputDir)
	if err != nil {
		return nil, err
	}

	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{Pages: make([]PageOutcome, 0, len(files))}
	result.Stats.PagesDiscovered = len(files)

	if len(files) == 0 {
		b.logger.Warn("no source documents found", logging.FieldSourceDir, cfg.SourceDir)
		result.Stats.Duration = time.Since(start)
		return result, nil
	}

	// Pass 1: parse everything sequentially and register titles and
	// toctrees. The registry must be complete before any page renders.
	navb := nav.NewBuilder(cfg.MasterDoc)

	var pages []page
	for _, rel := range files {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("build cancelled: %w", ctx.Err())
		default:
		}

		absPath := filepath.Join(sourceDir, filepath.FromSlash(rel))
		data, readErr := os.ReadFile(absPath)
		if readErr != nil {
			result.accumulate(PageOutcome{
				DocPath:    docPathFor(rel),
				SourcePath: rel,
				Error:      fmt.Errorf("read %s: %w", rel, readErr),
			})
			continue
		}

		doc := b.parser.Parse(absPath, string(data))
		docPath := docPathFor(rel)

		navb.RegisterDocument(docPath, doc.Title)
		navb.RegisterToctree(docPath, doc.ToctreeEntries())

		pages = append(pages, page{docPath: docPath, sourcePath: rel, doc: doc})
	}

	if _, ok := navb.Title(cfg.MasterDoc); !ok {
		b.logger.Warn("master document not found",
			logging.FieldMasterDoc, cfg.MasterDoc, logging.FieldSourceDir, cfg.SourceDir)
	}

	hl := highlight.New(cfg.HighlightStyle)
	renderer := render.New(render.Config{
		Directives:  directives.NewRegistry(hl.Highlight),
		Roles:       roles.NewRegistry(),
		Highlighter: hl,
		Nav:         navb,
		SourceDir:   sourceDir,
	})

	if cfg.Clean {
		if err := os.RemoveAll(outputDir); err != nil {
			return nil, fmt.Errorf("clean output directory: %w", err)
		}
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}
	if err := writeAssets(outputDir); err != nil {
		return nil, err
	}

	// Pass 2: render concurrently. The registry is read-only from here.
	jobs := cfg.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	if jobs > len(pages) {
		jobs = len(pages)
	}

	workCh := make(chan page)
	outCh := make(chan PageOutcome)

	var wg sync.WaitGroup
	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			b.worker(ctx, workCh, outCh, renderer, navb, cfg, outputDir)
		}()
	}

	go func() {
		defer close(workCh)
		for _, pg := range pages {
			select {
			case <-ctx.Done():
				return
			case workCh <- pg:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(outCh)
	}()

	// Workers complete out of order; re-sort into discovery order.
	outcomes := make(map[string]PageOutcome, len(pages))
	for outcome := range outCh {
		outcomes[outcome.DocPath] = outcome
	}
	for _, pg := range pages {
		if outcome, ok := outcomes[pg.docPath]; ok {
			result.accumulate(outcome)
		}
	}

	if ctx.Err() != nil {
		return result, fmt.Errorf("build cancelled: %w", ctx.Err())
	}

	result.Stats.Duration = time.Since(start)
	return result, nil
}

// worker renders pages from workCh and sends outcomes to outCh.
func (b *Builder) worker(
	ctx context.Context,
	workCh <-chan page,
	outCh chan<- PageOutcome,
	renderer *render.Renderer,
	navb *nav.Builder,
	cfg *config.Config,
	outputDir string,
) {
	for pg := range workCh {
		select {
		case <-ctx.Done():
			return
		default:
		}

		outcome := b.renderOne(renderer, navb, cfg, outputDir, pg)

		select {
		case <-ctx.Done():
			return
		case outCh <- outcome:
		}
	}
}

// renderOne renders a single page and writes it under the output
// directory, mirroring the source tree.
func (b *Builder) renderOne(
	renderer *render.Renderer,
	navb *nav.Builder,
	cfg *config.Config,
	outputDir string,
	pg page,
) PageOutcome {
	outcome := PageOutcome{
		DocPath:    pg.docPath,
		SourcePath: pg.sourcePath,
		Title:      pg.doc.Title,
	}

	body := renderer.RenderDocument(pg.doc.Content)

	if cfg.Strict {
		if marker, found := findErrorComment(body); found {
			outcome.Error = fmt.Errorf("render %s: %s", pg.docPath, marker)
			return outcome
		}
	}

	pageNav, err := navb.GetPageNavigation(pg.docPath)
	if err != nil {
		outcome.Error = fmt.Errorf("navigation for %s: %w", pg.docPath, err)
		return outcome
	}

	sidebar, err := navb.RenderToctree(nav.ToctreeOptions{
		Maxdepth:   nav.DefaultToctreeOptions().Maxdepth,
		CurrentDoc: pg.docPath,
	})
	if err != nil {
		outcome.Error = fmt.Errorf("sidebar for %s: %w", pg.docPath, err)
		return outcome
	}

	root := rootPrefix(pg.docPath)

	html, err := renderPage(pageData{
		ProjectName: cfg.ProjectName,
		Title:       pg.doc.Title,
		Body:        template.HTML(body),
		Sidebar:     template.HTML(rebaseLinks(sidebar, root)),
		Parents:     pageNav.Parents,
		Prev:        pageNav.Prev,
		Next:        pageNav.Next,
		Root:        root,
	})
	if err != nil {
		outcome.Error = err
		return outcome
	}

	relOut := pg.docPath + ".html"
	absOut := filepath.Join(outputDir, filepath.FromSlash(relOut))
	if err := os.MkdirAll(filepath.Dir(absOut), 0o755); err != nil {
		outcome.Error = fmt.Errorf("create %s: %w", filepath.Dir(relOut), err)
		return outcome
	}
	if err := os.WriteFile(absOut, []byte(html), 0o644); err != nil {
		outcome.Error = fmt.Errorf("write %s: %w", relOut, err)
		return outcome
	}

	outcome.OutputPath = relOut
	b.logger.Debug("rendered page", logging.FieldDoc, pg.docPath, logging.FieldOutput, relOut)
	return outcome
}

// resolveOutputDir resolves the output directory against the working
// directory without requiring it to exist.
func resolveOutputDir(workDir, outputDir string) (string, error) {
	dir := outputDir
	if !filepath.IsAbs(dir) {
		if workDir == "" {
			wd, err := os.Getwd()
			if err != nil {
				return "", fmt.Errorf("get working directory: %w", err)
			}
			workDir = wd
		}
		dir = filepath.Join(workDir, dir)
	}
	return filepath.Clean(dir), nil
}

// docPathFor derives the document path from a source-relative file
// path: slash-separated, extension stripped.
func docPathFor(rel string) string {
	return strings.TrimSuffix(rel, path.Ext(rel))
}

var errorCommentRe = regexp.MustCompile(`<!-- ((?:Error processing directive|literalinclude error|include error)[^>]*) -->`)

// findErrorComment reports the first directive processing failure
// embedded in rendered HTML. The renderer degrades failures to comments
// so normal builds keep going; strict builds surface them instead.
func findErrorComment(body string) (string, bool) {
	m := errorCommentRe.FindStringSubmatch(body)
	if m == nil {
		return "", false
	}
	return strings.TrimSpace(m[1]), true
}

var hrefRe = regexp.MustCompile(`href="([^"]+)"`)

// rebaseLinks prefixes root-relative hrefs so sidebar links resolve
// from pages in subdirectories. External and fragment links pass
// through untouched.
func rebaseLinks(s, root string) string {
	if root == "" {
		return s
	}
	return hrefRe.ReplaceAllStringFunc(s, func(m string) string {
		target := m[len(`href="`) : len(m)-1]
		if strings.HasPrefix(target, "http://") || strings.HasPrefix(target, "https://") ||
			strings.HasPrefix(target, "#") || strings.HasPrefix(target, "/") {
			return m
		}
		return `href="` + root + target + `"`
	})
}
