package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"formcraft/internal/app"
	"formcraft/internal/config"
	"formcraft/internal/logging"
	"formcraft/internal/model"
)

const floodPassage = "After three weeks of steady rain, the river rose above its banks. " +
	"The old levee, patched many times, finally gave way on a Tuesday night."

func main() {
	cfg := config.Load()
	log := logging.New(cfg.LogFormat, cfg.Environment)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	a, err := app.New(ctx, cfg, log)
	if err != nil {
		log.Error("seed failed", "error", err)
		os.Exit(1)
	}
	defer a.Close(context.Background())

	form, err := a.FormService.Create(ctx, &model.CreateFormRequest{
		Title: "Reading & Vocabulary Check",
		Questions: []model.Question{
			{
				ClientID: "seed-categorize",
				Type:     model.QuestionTypeCategorize,
				Title:    "Which of these are mammals?",
				Options: []model.Option{
					{Text: "Dolphin"},
					{Text: "Shark"},
					{Text: "Bat"},
					{Text: "Penguin"},
				},
			},
			{
				ClientID:  "seed-cloze",
				Type:      model.QuestionTypeCloze,
				Title:     "Fill in the blanks",
				ClozeText: "The quick brown ___ jumps over the lazy ___.",
			},
			{
				ClientID:             "seed-comprehension",
				Type:                 model.QuestionTypeComprehension,
				Title:                "Why did the river flood?",
				ComprehensionPassage: floodPassage,
			},
		},
	})
	if err != nil {
		log.Error("seed failed", "error", err)
		os.Exit(1)
	}

	fmt.Printf("Seeded form %q with id %s\n", form.Title, form.ID)
	fmt.Printf("Fill it at /forms/%s\n", form.ID)
}
