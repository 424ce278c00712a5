package editor

import (
	"fmt"
	"io"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"formcraft/internal/client"
	"formcraft/internal/model"
)

// Definition is a form described in a YAML file. Image fields are paths
// to local files, relative to the file's directory.
type Definition struct {
	Title       string        `yaml:"title"`
	HeaderImage string        `yaml:"headerImage"`
	Questions   []QuestionDef `yaml:"questions"`
}

// QuestionDef is one question of a Definition
type QuestionDef struct {
	Type    model.QuestionType `yaml:"type"`
	Title   string             `yaml:"title"`
	Image   string             `yaml:"image"`
	Options []string           `yaml:"options"`
	Cloze   string             `yaml:"clozeText"`
	Passage string             `yaml:"comprehensionPassage"`
}

// ParseDefinition decodes a YAML form definition
func ParseDefinition(r io.Reader) (*Definition, error) {
	var def Definition
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&def); err != nil {
		return nil, fmt.Errorf("parse form definition: %w", err)
	}
	return &def, nil
}

// FileOpener loads an image referenced by a definition
type FileOpener func(path string) (*client.File, error)

// Apply replays the definition onto e through the regular editing
// operations. Relative image paths are resolved against baseDir.
func (d *Definition) Apply(e *Editor, baseDir string, open FileOpener) error {
	if open == nil {
		open = client.NewFileFromPath
	}
	resolve := func(p string) string {
		if filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(baseDir, p)
	}

	e.SetTitle(d.Title)
	if d.HeaderImage != "" {
		f, err := open(resolve(d.HeaderImage))
		if err != nil {
			return fmt.Errorf("header image: %w", err)
		}
		e.AttachHeaderImage(f)
	}

	for n, qd := range d.Questions {
		i, err := e.AddQuestion(qd.Type)
		if err != nil {
			return fmt.Errorf("question %d: %w", n+1, err)
		}
		if err := e.SetQuestionTitle(i, qd.Title); err != nil {
			return err
		}
		if qd.Image != "" {
			f, err := open(resolve(qd.Image))
			if err != nil {
				return fmt.Errorf("question %d image: %w", n+1, err)
			}
			if err := e.AttachQuestionImage(i, f); err != nil {
				return err
			}
		}

		switch qd.Type {
		case model.QuestionTypeCategorize:
			for o, text := range qd.Options {
				if err := e.AddOption(i); err != nil {
					return err
				}
				if err := e.UpdateOption(i, o, text); err != nil {
					return err
				}
			}
		case model.QuestionTypeCloze:
			if err := e.SetClozeText(i, qd.Cloze); err != nil {
				return err
			}
		case model.QuestionTypeComprehension:
			if err := e.SetPassage(i, qd.Passage); err != nil {
				return err
			}
		}
	}
	return nil
}
