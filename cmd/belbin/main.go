package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/peterbourgon/ff/v3"
	"go.uber.org/zap"

	"hepi-staff/internal/belbin"
	"hepi-staff/internal/domain"
	"hepi-staff/internal/repository"
)

func main() {
	fs := flag.NewFlagSet("belbin", flag.ExitOnError)
	var (
		_           = fs.String("config", "", "config file (optional), json format")
		answersPath = fs.String("answers", "", "json file with the answers; without it the questionnaire is asked on stdin")
		historyPath = fs.String("history", "", "sqlite file where results are kept (optional)")
		respondent  = fs.String("name", "", "respondent name stored with the result")
		list        = fs.Bool("list", false, "print the stored history and exit")
		limit       = fs.Int("limit", 20, "how many history entries -list prints")
	)
	if err := ff.Parse(fs, os.Args[1:],
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(ff.JSONParser),
		ff.WithEnvVarPrefix("BELBIN"),
	); err != nil {
		log.Fatal(err)
	}

	logger := zap.NewExample()
	defer logger.Sync()

	ctx := context.Background()
	engine := belbin.DefaultEngine()

	var history *repository.SQLiteHistoryRepository
	if *historyPath != "" {
		h, err := repository.NewSQLiteHistoryRepository(*historyPath)
		if err != nil {
			logger.Fatal("open history", zap.Error(err))
		}
		defer h.Close()
		history = h
	}

	if *list {
		if history == nil {
			log.Fatal("-list needs -history")
		}
		entries, err := history.List(ctx, *limit)
		if err != nil {
			logger.Fatal("list history", zap.Error(err))
		}
		printHistory(os.Stdout, entries)
		return
	}

	var (
		result belbin.ScoringResult
		err    error
	)
	if *answersPath != "" {
		data, readErr := os.ReadFile(*answersPath)
		if readErr != nil {
			log.Fatal(readErr)
		}
		form, parseErr := answersFromJSON(data)
		if parseErr != nil {
			log.Fatal(parseErr)
		}
		result, err = engine.ScoreForm(form)
	} else {
		form := runQuestionnaire(bufio.NewReader(os.Stdin), os.Stdout, engine.Questionnaire())
		result, err = engine.ScoreForm(form)
	}
	if err != nil {
		printScoringError(os.Stderr, err)
		os.Exit(1)
	}

	printResult(os.Stdout, engine, result)

	if history != nil {
		name := strings.TrimSpace(*respondent)
		if name == "" {
			name = "anonymous"
		}
		entry := domain.BelbinAssessment{
			ID:         uuid.NewString(),
			EmployeeID: name,
			Result:     result.Encoded,
			TopTrait:   result.TopTrait,
			Scores:     result.Scores,
			Levels:     result.Levels,
			CreatedAt:  time.Now().UTC(),
		}
		if err := history.Save(ctx, entry); err != nil {
			logger.Error("save history", zap.Error(err))
			return
		}
		fmt.Printf("\nGuardado en %s (id %s)\n", *historyPath, entry.ID)
	}
}
