package presentation

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"path"
	"strings"

	"golang.org/x/net/html/charset"
)

const (
	presentationPart = "ppt/presentation.xml"
	relNamespace     = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	notesRelType     = relNamespace + "/notesSlide"
)

type xmlPresentation struct {
	SlideIDs []struct {
		RelID string `xml:"http://schemas.openxmlformats.org/officeDocument/2006/relationships id,attr"`
	} `xml:"sldIdLst>sldId"`
}

type xmlRelationships struct {
	Relationships []xmlRelationship `xml:"Relationship"`
}

type xmlRelationship struct {
	ID         string `xml:"Id,attr"`
	Type       string `xml:"Type,attr"`
	Target     string `xml:"Target,attr"`
	TargetMode string `xml:"TargetMode,attr"`
}

// xmlSlide covers both slides and notes slides, they share the cSld/spTree layout
type xmlSlide struct {
	CSld struct {
		SpTree struct {
			Nodes []xmlShapeNode `xml:",any"`
		} `xml:"spTree"`
	} `xml:"cSld"`
}

type xmlShapeNode struct {
	XMLName     xml.Name
	Placeholder *struct {
		Type string `xml:"type,attr"`
	} `xml:"nvSpPr>nvPr>ph"`
	TxBody *xmlTextBody `xml:"txBody"`
}

type xmlTextBody struct {
	Paragraphs []struct {
		Items []struct {
			XMLName xml.Name
			Text    string `xml:"t"`
		} `xml:",any"`
	} `xml:"p"`
}

// Read opens the .pptx archive, walks slides in presentation order and closes the archive before returning
func (r *implReader) Read(filePath string) (*Presentation, error) {
	zr, err := zip.OpenReader(filePath)
	if err != nil {
		return nil, fmt.Errorf("open pptx: %w", err)
	}
	defer zr.Close()

	parts := make(map[string]*zip.File, len(zr.File))
	for _, f := range zr.File {
		parts[f.Name] = f
	}
	pkg := &pptxPackage{parts: parts}

	var pres xmlPresentation
	if err := pkg.decode(presentationPart, &pres); err != nil {
		return nil, err
	}
	rels, err := pkg.relationships(presentationPart)
	if err != nil {
		return nil, err
	}

	result := &Presentation{}
	for i, id := range pres.SlideIDs {
		rel, ok := rels[id.RelID]
		if !ok {
			return nil, fmt.Errorf("slide %d: relationship %q not found", i+1, id.RelID)
		}
		slide, err := pkg.readSlide(resolveTarget(presentationPart, rel.Target))
		if err != nil {
			return nil, fmt.Errorf("slide %d: %w", i+1, err)
		}
		result.Slides = append(result.Slides, slide)
	}

	return result, nil
}

type pptxPackage struct {
	parts map[string]*zip.File
}

func (p *pptxPackage) decode(name string, v interface{}) error {
	f, ok := p.parts[name]
	if !ok {
		return fmt.Errorf("part %s not found", name)
	}

	rc, err := f.Open()
	if err != nil {
		return fmt.Errorf("open part %s: %w", name, err)
	}
	defer rc.Close()

	decoder := xml.NewDecoder(rc)
	decoder.CharsetReader = charset.NewReaderLabel
	if err := decoder.Decode(v); err != nil {
		return fmt.Errorf("decode part %s: %w", name, err)
	}
	return nil
}

// relationships returns the rels of a part keyed by Id, a missing rels part is not an error
func (p *pptxPackage) relationships(part string) (map[string]xmlRelationship, error) {
	relsPart := path.Join(path.Dir(part), "_rels", path.Base(part)+".rels")
	result := make(map[string]xmlRelationship)
	if _, ok := p.parts[relsPart]; !ok {
		return result, nil
	}

	var rels xmlRelationships
	if err := p.decode(relsPart, &rels); err != nil {
		return nil, err
	}
	for _, rel := range rels.Relationships {
		result[rel.ID] = rel
	}
	return result, nil
}

func (p *pptxPackage) readSlide(part string) (Slide, error) {
	var sld xmlSlide
	if err := p.decode(part, &sld); err != nil {
		return Slide{}, err
	}

	var slide Slide
	for _, node := range sld.CSld.SpTree.Nodes {
		if node.XMLName.Local != "sp" {
			continue
		}
		slide.Shapes = append(slide.Shapes, Shape{
			Text:    node.TxBody.text(),
			IsTitle: node.placeholderType() == "title" || node.placeholderType() == "ctrTitle",
		})
	}

	rels, err := p.relationships(part)
	if err != nil {
		return Slide{}, err
	}
	for _, rel := range rels {
		if rel.Type != notesRelType || rel.TargetMode == "External" {
			continue
		}
		notes, err := p.readNotes(resolveTarget(part, rel.Target))
		if err != nil {
			return Slide{}, fmt.Errorf("notes: %w", err)
		}
		slide.Notes = notes
		break
	}

	return slide, nil
}

// readNotes returns the text of the notes body placeholder
func (p *pptxPackage) readNotes(part string) (string, error) {
	var sld xmlSlide
	if err := p.decode(part, &sld); err != nil {
		return "", err
	}

	for _, node := range sld.CSld.SpTree.Nodes {
		if node.XMLName.Local == "sp" && node.placeholderType() == "body" {
			return node.TxBody.text(), nil
		}
	}
	return "", nil
}

func (n xmlShapeNode) placeholderType() string {
	if n.Placeholder == nil {
		return ""
	}
	return n.Placeholder.Type
}

// text joins paragraphs with newlines, line breaks inside a paragraph become newlines too
func (b *xmlTextBody) text() string {
	if b == nil {
		return ""
	}

	paragraphs := make([]string, 0, len(b.Paragraphs))
	for _, para := range b.Paragraphs {
		var sb strings.Builder
		for _, item := range para.Items {
			switch item.XMLName.Local {
			case "r", "fld":
				sb.WriteString(item.Text)
			case "br":
				sb.WriteString("\n")
			}
		}
		paragraphs = append(paragraphs, sb.String())
	}
	return strings.Join(paragraphs, "\n")
}

func resolveTarget(source, target string) string {
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(target, "/")
	}
	return path.Join(path.Dir(source), target)
}
