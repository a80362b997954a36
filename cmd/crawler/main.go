package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"go-deadline-crawler/internal/config"
	"go-deadline-crawler/internal/pipeline"
	"go-deadline-crawler/internal/reporter"
	"go-deadline-crawler/internal/scraper"
	"go-deadline-crawler/internal/youtube"
)

func main() {
	//load config
	cfg := config.Load()

	//flags override config
	seedURL := flag.String("url", cfg.SeedURL, "website to scan for job postings")
	handle := flag.String("handle", cfg.YouTubeHandle, "YouTube channel handle (optional, @ may be omitted)")
	apiKey := flag.String("key", cfg.YouTubeAPIKey, "YouTube API key (optional)")
	noRelay := flag.Bool("no-relay", !cfg.UseRelay, "fetch pages directly instead of through the CORS relay")
	flag.Parse()

	if *seedURL == "" {
		log.Fatal("❌ A website URL is required (-url flag or seed_url in config)")
	}

	log.Printf("🔧 Config loaded. Seed: %s", *seedURL)

	//init telegram reporting when configured
	var tg *reporter.TelegramReporter
	if cfg.TelegramToken != "" && cfg.TelegramChatID != 0 {
		var err error
		tg, err = reporter.NewTelegramReporter(cfg)
		if err != nil {
			log.Fatalf("❌ Failed to init Telegram reporter: %v", err)
		}
		log.Println("🤖 Telegram reporting enabled.")
	}

	//setup context with timeout = 10 mins
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	timeout := time.Duration(cfg.HTTPTimeoutSeconds) * time.Second
	fetcher := scraper.NewFetcher(cfg.RelayURL, !*noRelay, timeout)
	videos := youtube.NewClient(*apiKey, timeout)

	orch := pipeline.NewOrchestrator(fetcher, videos, log.Default())
	orch.Status = func(msg string) {
		log.Printf("⏳ %s", msg)
		if tg != nil {
			if err := tg.SendStatus(msg); err != nil {
				log.Printf("⚠️ Failed to send status to Telegram: %v", err)
			}
		}
	}

	log.Println("🚀 Starting job deadline scan...")
	jobs, err := orch.Run(ctx, *seedURL, *handle)
	if err != nil {
		if tg != nil {
			if sendErr := tg.SendError(err); sendErr != nil {
				log.Printf("⚠️ Failed to send error to Telegram: %v", sendErr)
			}
		}
		log.Fatalf("❌ An error occurred: %v", err)
	}

	if len(jobs) == 0 {
		log.Println("🏁 Scan complete. No jobs with future deadlines were found.")
		return
	}

	log.Printf("📊 Found %d jobs with upcoming deadlines:", len(jobs))
	for _, job := range jobs {
		line := fmt.Sprintf("  📌 %s | last date %s | %s", job.Title, job.LastDate.Format("02/01/2006"), job.Link)
		if job.YouTubeLink != "" {
			line += " | video: " + job.YouTubeLink
		}
		log.Println(line)

		if tg != nil {
			if err := tg.SendJob(job); err != nil {
				log.Printf("⚠️ Failed to send job to Telegram: %v", err)
			}
			//1 second delay to avoid 429
			time.Sleep(1 * time.Second)
		}
	}

	saveJobs(cfg.ResultsPath, jobs)

	log.Println("🏁 Execution finished.")
}

func saveJobs(dir string, jobs []scraper.Job) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		log.Printf("⚠️ Failed to create results directory: %v", err)
		return
	}

	//gen filename: job-search-YYYY-MM-DD.json
	filename := fmt.Sprintf("job-search-%s.json", time.Now().Format("2006-01-02"))
	filePath := filepath.Join(dir, filename)

	data, err := json.MarshalIndent(jobs, "", " ")
	if err != nil {
		log.Printf("⚠️ Failed to marshal jobs to JSON: %v", err)
		return
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		log.Printf("⚠️ Failed to write results file: %v", err)
		return
	}

	log.Printf("📁 Results saved to %s", filePath)
}
