package tui

import (
	"github.com/studiowebux/ispcli/internal/formatter"
	"github.com/studiowebux/ispcli/internal/highlight"
	"github.com/studiowebux/ispcli/internal/snapshot"
)

// previewSource selects which table a preview shows
type previewSource int

const (
	previewISP previewSource = iota
	previewBCC
)

// previewFormat is one export the preview can cycle through
type previewFormat struct {
	Name     string
	Language string
}

var (
	ispPreviewFormats = []previewFormat{
		{Name: "ISP table (HTML)", Language: highlight.LangHTML},
		{Name: "ISP table (Markdown)", Language: highlight.LangMarkdown},
		{Name: "Snapshot (JSON)", Language: highlight.LangJSON},
		{Name: "Snapshot (YAML)", Language: highlight.LangYAML},
	}
	bccPreviewFormats = []previewFormat{
		{Name: "Test table (HTML)", Language: highlight.LangHTML},
		{Name: "Test table (Markdown)", Language: highlight.LangMarkdown},
		{Name: "Test skeleton", Language: highlight.LangJava},
	}
)

type previewState struct {
	source     previewSource
	format     int
	returnMode Mode
}

func (m *Model) openPreview(source previewSource) {
	m.preview = previewState{source: source, returnMode: m.mode}
	m.mode = ModePreview
	m.updatePreviewContent()
	m.previewView.GotoTop()
}

func (m *Model) previewFormats() []previewFormat {
	if m.preview.source == previewBCC {
		return bccPreviewFormats
	}
	return ispPreviewFormats
}

// previewRaw returns the uncolored text of the current preview format
func (m *Model) previewRaw() string {
	doc := m.sessionMgr.Document()

	if m.preview.source == previewISP {
		switch m.preview.format {
		case 0:
			return formatter.ISPTableHTML(doc, m.formatterOptions())
		case 1:
			return formatter.ISPTableMarkdown(doc)
		case 2, 3:
			format := snapshot.FormatJSON
			if m.preview.format == 3 {
				format = snapshot.FormatYAML
			}
			data, err := snapshot.Encode(doc, format)
			if err != nil {
				return err.Error()
			}
			return string(data)
		}
		return ""
	}

	rows := m.sessionMgr.TestRows()
	switch m.preview.format {
	case 0:
		out, _ := formatter.BCCTableHTML(rows, m.sessionMgr.Oracles(rows), m.formatterOptions())
		return out
	case 1:
		out, _ := formatter.BCCTableMarkdown(rows, m.sessionMgr.Oracles(rows), m.formatterOptions())
		return out
	case 2:
		style, err := formatter.ParseSkeletonStyle(m.settings.SkeletonStyle)
		if err != nil {
			return err.Error()
		}
		return formatter.TestSkeleton(rows, m.sessionMgr.TestNames(rows), style)
	}
	return ""
}

// previewLanguage returns the highlighting language of the current format
func (m *Model) previewLanguage() string {
	format := m.previewFormats()[m.preview.format]
	if format.Language == highlight.LangJava && m.settings.SkeletonStyle == string(formatter.StyleGo) {
		return highlight.LangGo
	}
	return format.Language
}

func (m *Model) updatePreviewContent() {
	m.previewView.SetContent(highlight.Code(m.previewRaw(), m.previewLanguage()))
}
