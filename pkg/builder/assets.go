package builder

import (
	"fmt"
	"os"
	"path/filepath"
)

// siteCSS is the stylesheet written to _static/ on every build. It
// covers the page shell plus the classes the renderer emits
// (highlight blocks, admonitions, the sidebar toctree).
const siteCSS = `/* rstlight default stylesheet */
body { margin: 0; font-family: -apple-system, "Segoe UI", Roboto, sans-serif; line-height: 1.6; color: #222; }
.page { display: flex; min-height: 100vh; }
.sidebar { width: 18rem; flex-shrink: 0; background: #f8f8f8; border-right: 1px solid #e0e0e0; padding: 1rem; }
.sidebar-brand { font-weight: 600; margin-bottom: 1rem; }
.sidebar-brand a { color: #222; text-decoration: none; }
.sidebar-tree ul { list-style: none; padding-left: 1rem; margin: 0; }
.sidebar-tree a { color: #444; text-decoration: none; display: inline-block; padding: 0.15rem 0; }
.sidebar-tree a:hover { color: #0969da; }
.sidebar-tree li.current-page > a { font-weight: 600; color: #0969da; }
.toctree-checkbox { display: none; }
.toctree-checkbox ~ ul { display: none; }
.toctree-checkbox:checked ~ ul { display: block; }
.content { flex: 1; max-width: 48rem; padding: 2rem 3rem; }
.breadcrumbs ul { list-style: none; display: flex; gap: 0.5rem; padding: 0; color: #666; font-size: 0.875rem; }
.breadcrumbs li + li::before { content: "/"; margin-right: 0.5rem; color: #bbb; }
article section { margin-bottom: 1.5rem; }
a.headerlink { visibility: hidden; margin-left: 0.25rem; text-decoration: none; color: #999; }
h1:hover a.headerlink, h2:hover a.headerlink, h3:hover a.headerlink,
h4:hover a.headerlink, h5:hover a.headerlink, h6:hover a.headerlink { visibility: visible; }
pre { background: #f6f8fa; padding: 0.75rem 1rem; overflow-x: auto; border-radius: 4px; }
code { font-family: ui-monospace, "SF Mono", Menlo, monospace; font-size: 0.9em; }
.admonition { border-left: 4px solid #0969da; background: #f0f6ff; padding: 0.5rem 1rem; margin: 1rem 0; border-radius: 0 4px 4px 0; }
.admonition-title { font-weight: 600; margin: 0.25rem 0; }
.admonition.warning, .admonition.caution { border-color: #d4a72c; background: #fff8e5; }
.admonition.danger, .admonition.error { border-color: #cf222e; background: #ffebe9; }
.page-footer { display: flex; justify-content: space-between; margin-top: 3rem; border-top: 1px solid #e0e0e0; padding-top: 1rem; }
.page-footer a { color: #0969da; text-decoration: none; }
table { border-collapse: collapse; margin: 1rem 0; }
th, td { border: 1px solid #d0d0d0; padding: 0.4rem 0.75rem; text-align: left; }
thead { background: #f6f8fa; }
`

// writeAssets writes the static assets into the output directory.
func writeAssets(outputDir string) error {
	staticDir := filepath.Join(outputDir, "_static")
	if err := os.MkdirAll(staticDir, 0o755); err != nil {
		return fmt.Errorf("create static directory: %w", err)
	}
	cssPath := filepath.Join(staticDir, "rstlight.css")
	if err := os.WriteFile(cssPath, []byte(siteCSS), 0o644); err != nil {
		return fmt.Errorf("write stylesheet: %w", err)
	}
	return nil
}
