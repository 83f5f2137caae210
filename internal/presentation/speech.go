package presentation

import "strings"

// SpeechText derives the narration for a slide.
// Notes win: "<title>. <notes>", where title is the title shape text or else the first
// non-empty shape text. Without notes the shape texts are joined with ". " plus a final period.
func SpeechText(slide Slide) (string, error) {
	var texts []string
	title := ""
	for _, shape := range slide.Shapes {
		if shape.Text == "" {
			continue
		}
		if shape.IsTitle && title == "" {
			title = shape.Text
		}
		texts = append(texts, shape.Text)
	}

	notes := slide.Notes
	if notes == "" {
		if len(texts) == 0 {
			return "", ErrEmptySlide
		}
		return strings.Join(texts, ". ") + ".", nil
	}

	if title == "" && len(texts) > 0 {
		title = texts[0]
	}
	if title == "" {
		return notes, nil
	}
	return title + ". " + notes, nil
}
