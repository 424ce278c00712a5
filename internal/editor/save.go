package editor

import (
	"context"

	"formcraft/internal/client"
	"formcraft/internal/model"
)

// Save uploads the header and question images one at a time, then posts
// the assembled form. The editor's own state is left untouched. A failed
// image upload drops that image and the save carries on; the upload
// client has already told the user.
func (e *Editor) Save(ctx context.Context) (*model.Form, error) {
	req := &model.CreateFormRequest{
		Title:     e.title,
		Questions: make([]model.Question, 0, len(e.blocks)),
	}

	if e.headerFile != nil {
		if url := e.upload(ctx, e.headerFile, "header"); url != "" {
			req.HeaderImage = url
		}
	}

	for _, b := range e.blocks {
		q := cloneBlock(b).Question
		if b.ImageFile != nil {
			if url := e.upload(ctx, b.ImageFile, q.ClientID); url != "" {
				q.Image = url
			}
		}
		req.Questions = append(req.Questions, q)
	}

	env, err := e.api.CreateForm(ctx, req)
	if err != nil {
		e.log.WarnContext(ctx, "save failed", "error", err)
		e.notifier.Notify("Network or server error: " + err.Error())
		return nil, err
	}
	if env == nil || env.Form == nil || env.Form.ID == "" {
		e.notifier.Notify("Error creating form")
		return nil, ErrNoFormID
	}

	id := env.Form.ID
	e.log.InfoContext(ctx, "form created", "formId", id, "questions", len(req.Questions))
	e.notifier.Notify("Form created with id " + id)
	e.navigator.Navigate("/forms/" + id)
	return env.Form, nil
}

func (e *Editor) upload(ctx context.Context, f *client.File, target string) string {
	res, err := e.api.Upload(ctx, f)
	if err != nil {
		e.log.DebugContext(ctx, "image dropped", "target", target, "file", f.Name, "error", err)
		return ""
	}
	return res.URL
}
