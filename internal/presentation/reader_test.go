package presentation

import (
	"archive/zip"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const (
	testNS = `xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" ` +
		`xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" ` +
		`xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main"`
	testRelsNS = `xmlns="http://schemas.openxmlformats.org/package/2006/relationships"`
	slideType  = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slide"
)

type testSlide struct {
	shapes []testShape
	notes  string
}

type testShape struct {
	ph    string
	paras []string
}

func shapeXML(s testShape) string {
	ph := ""
	if s.ph != "" {
		ph = fmt.Sprintf(`<p:ph type="%s"/>`, s.ph)
	}
	var body strings.Builder
	for _, para := range s.paras {
		body.WriteString("<a:p>")
		for i, line := range strings.Split(para, "\n") {
			if i > 0 {
				body.WriteString("<a:br/>")
			}
			fmt.Fprintf(&body, "<a:r><a:rPr/><a:t>%s</a:t></a:r>", line)
		}
		body.WriteString("</a:p>")
	}
	return fmt.Sprintf(`<p:sp><p:nvSpPr><p:cNvPr id="2" name="s"/><p:cNvSpPr/><p:nvPr>%s</p:nvPr></p:nvSpPr>`+
		`<p:spPr/><p:txBody><a:bodyPr/>%s</p:txBody></p:sp>`, ph, body.String())
}

func slideXML(shapes []testShape) string {
	return partXML("p:sld", shapes)
}

func partXML(root string, shapes []testShape) string {
	var sb strings.Builder
	for _, s := range shapes {
		sb.WriteString(shapeXML(s))
	}
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`+
		`<%s %s><p:cSld><p:spTree><p:nvGrpSpPr><p:cNvPr id="1" name=""/></p:nvGrpSpPr><p:grpSpPr/>`+
		`<p:pic><p:nvPicPr><p:cNvPr id="9" name="pic"/></p:nvPicPr></p:pic>%s</p:spTree></p:cSld></%s>`,
		root, testNS, sb.String(), root)
}

// writeTestPPTX builds a minimal deck. Slide parts are numbered in reverse so that
// the reader has to follow sldIdLst rather than part names.
func writeTestPPTX(t *testing.T, slides []testSlide) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "deck.pptx")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	write := func(name, content string) {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatal(err)
		}
	}

	var ids, rels strings.Builder
	for i, s := range slides {
		n := len(slides) - i
		fmt.Fprintf(&ids, `<p:sldId id="%d" r:id="rId%d"/>`, 256+i, i+10)
		fmt.Fprintf(&rels, `<Relationship Id="rId%d" Type="%s" Target="slides/slide%d.xml"/>`, i+10, slideType, n)

		write(fmt.Sprintf("ppt/slides/slide%d.xml", n), slideXML(s.shapes))
		if s.notes != "" {
			write(fmt.Sprintf("ppt/slides/_rels/slide%d.xml.rels", n), fmt.Sprintf(
				`<?xml version="1.0" encoding="UTF-8"?><Relationships %s>`+
					`<Relationship Id="rId1" Type="%s" Target="../notesSlides/notesSlide%d.xml"/></Relationships>`,
				testRelsNS, notesRelType, n))
			write(fmt.Sprintf("ppt/notesSlides/notesSlide%d.xml", n), partXML("p:notes", []testShape{
				{ph: "sldImg"},
				{ph: "body", paras: strings.Split(s.notes, "\n")},
			}))
		}
	}

	write(presentationPart, fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>`+
		`<p:presentation %s><p:sldIdLst>%s</p:sldIdLst></p:presentation>`, testNS, ids.String()))
	write("ppt/_rels/presentation.xml.rels", fmt.Sprintf(
		`<?xml version="1.0" encoding="UTF-8"?><Relationships %s>%s</Relationships>`, testRelsNS, rels.String()))

	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRead(t *testing.T) {
	path := writeTestPPTX(t, []testSlide{
		{shapes: []testShape{{ph: "ctrTitle", paras: []string{"Welcome"}}, {ph: "subTitle", paras: []string{"An intro"}}}},
		{shapes: []testShape{{ph: "title", paras: []string{"Agenda"}}, {paras: []string{"First", "Second"}}}, notes: "We cover two things."},
		{shapes: []testShape{{paras: []string{"line one\nline two"}}}},
	})

	pres, err := NewReader().Read(path)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if len(pres.Slides) != 3 {
		t.Fatalf("len(Slides) = %d, want 3", len(pres.Slides))
	}

	first := pres.Slides[0]
	if len(first.Shapes) != 2 || first.Shapes[0].Text != "Welcome" || !first.Shapes[0].IsTitle {
		t.Errorf("slide 1 shapes = %+v", first.Shapes)
	}
	if first.Shapes[1].IsTitle {
		t.Error("subtitle must not be treated as title")
	}
	if first.Notes != "" {
		t.Errorf("slide 1 notes = %q, want empty", first.Notes)
	}

	second := pres.Slides[1]
	if second.Shapes[1].Text != "First\nSecond" {
		t.Errorf("slide 2 body = %q, want %q", second.Shapes[1].Text, "First\nSecond")
	}
	if second.Notes != "We cover two things." {
		t.Errorf("slide 2 notes = %q", second.Notes)
	}

	if got := pres.Slides[2].Shapes[0].Text; got != "line one\nline two" {
		t.Errorf("slide 3 text = %q", got)
	}
}

func TestReadInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.pptx")
	if err := os.WriteFile(path, []byte("not a zip"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := NewReader().Read(path); err == nil {
		t.Error("Read() should fail for a non-zip file")
	}
	if _, err := NewReader().Read(filepath.Join(t.TempDir(), "missing.pptx")); err == nil {
		t.Error("Read() should fail for a missing file")
	}
}

func TestResolveTarget(t *testing.T) {
	tests := []struct {
		source, target, want string
	}{
		{"ppt/presentation.xml", "slides/slide1.xml", "ppt/slides/slide1.xml"},
		{"ppt/slides/slide1.xml", "../notesSlides/notesSlide1.xml", "ppt/notesSlides/notesSlide1.xml"},
		{"ppt/slides/slide1.xml", "/ppt/notesSlides/notesSlide3.xml", "ppt/notesSlides/notesSlide3.xml"},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			if got := resolveTarget(tt.source, tt.target); got != tt.want {
				t.Errorf("resolveTarget() = %q, want %q", got, tt.want)
			}
		})
	}
}
