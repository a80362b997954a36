// Orchestrator sequences one full crawl: optional video-index build, seed
// fetch, link discovery, concurrent candidate fetches, per-post analysis
// and video matching, then dedup + sort.

package pipeline

import (
	"context"
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"go-deadline-crawler/internal/scraper"
	"go-deadline-crawler/internal/youtube"
)

const maxConcurrentFetches = 10

type Orchestrator struct {
	fetcher *scraper.Fetcher
	videos  *youtube.Client
	logger  *log.Logger

	// Status receives human-readable phase messages for the caller's UI.
	Status func(string)
	// Now is injectable so tests can pin "today".
	Now func() time.Time
}

func NewOrchestrator(fetcher *scraper.Fetcher, videos *youtube.Client, logger *log.Logger) *Orchestrator {
	if logger == nil {
		logger = log.Default()
	}
	return &Orchestrator{
		fetcher: fetcher,
		videos:  videos,
		logger:  logger,
		Status:  func(string) {},
		Now:     time.Now,
	}
}

// Run crawls seedURL and returns accepted jobs sorted ascending by
// deadline. An empty result with a nil error means the scan succeeded but
// nothing with a future deadline was found. Hard failures (seed fetch, no
// candidates, video-index build) abort the run.
func (o *Orchestrator) Run(ctx context.Context, seedURL, handle string) ([]scraper.Job, error) {
	runID := uuid.New().String()
	o.logger.Printf("[RUN %s] Starting scan of %s", runID, seedURL)

	//the video feature is active only when both handle and key are present
	useAPI := handle != "" && o.videos.HasKey()
	totalSteps := 3
	if useAPI {
		totalSteps = 4
	}
	step := 0

	var index []youtube.Video
	if useAPI {
		step++
		o.Status(fmt.Sprintf("Step %d/%d: Fetching videos from YouTube channel...", step, totalSteps))
		var err error
		index, err = o.videos.BuildIndex(ctx, handle)
		if err != nil {
			o.logger.Printf("[RUN %s] ERROR: %v", runID, err)
			return nil, err
		}
		o.logger.Printf("[RUN %s] Video index built: %d videos", runID, len(index))
	}

	step++
	o.Status(fmt.Sprintf("Step %d/%d: Fetching main page...", step, totalSteps))
	seedPage, err := o.fetcher.FetchPage(ctx, seedURL)
	if err != nil {
		o.logger.Printf("[RUN %s] ERROR: %v", runID, err)
		return nil, err
	}

	links, err := scraper.DiscoverLinks(seedPage.Doc, seedURL)
	if err != nil {
		o.logger.Printf("[RUN %s] ERROR: %v", runID, err)
		return nil, err
	}

	step++
	o.Status(fmt.Sprintf("Step %d/%d: Analyzing %d links...", step, totalSteps, len(links)))
	pages := o.fetchAll(ctx, runID, links)

	step++
	o.Status(fmt.Sprintf("Step %d/%d: Verifying posts...", step, totalSteps))
	today := o.Now()
	seen := make(map[string]bool)
	var jobs []scraper.Job
	for _, page := range pages {
		job := scraper.Analyze(page, today)
		if job == nil {
			continue
		}

		//index match takes priority over a link embedded in the post
		job.YouTubeLink = youtube.MatchVideo(job.Title, index)
		if job.YouTubeLink == "" {
			job.YouTubeLink = youtube.FindEmbedded(page.Doc)
		}

		if seen[job.Link] {
			continue //first occurrence wins
		}
		seen[job.Link] = true
		jobs = append(jobs, *job)
	}

	sort.Slice(jobs, func(i, j int) bool {
		return jobs[i].LastDate.Before(jobs[j].LastDate)
	})

	if len(jobs) == 0 {
		o.Status("Scan complete. No jobs with future deadlines were found.")
	}
	o.logger.Printf("[RUN %s] Finished: %d/%d candidates accepted", runID, len(jobs), len(links))
	return jobs, nil
}

// fetchAll fans out the candidate fetches (bounded), dropping any link
// whose fetch fails. One bad link must not abort the run. Results are
// only read after the WaitGroup joins, so no collector synchronization
// beyond the per-index slot is needed.
func (o *Orchestrator) fetchAll(ctx context.Context, runID string, links []string) []*scraper.Page {
	slots := make([]*scraper.Page, len(links))
	sem := make(chan struct{}, maxConcurrentFetches)
	var wg sync.WaitGroup

	for i, link := range links {
		i, link := i, link
		wg.Add(1)
		go func() {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			page, err := o.fetcher.FetchPage(ctx, link)
			if err != nil {
				o.logger.Printf("[RUN %s] SKIP %s: %v", runID, link, err)
				return
			}
			slots[i] = page
		}()
	}
	wg.Wait()

	pages := make([]*scraper.Page, 0, len(slots))
	for _, page := range slots {
		if page != nil {
			pages = append(pages, page)
		}
	}
	return pages
}
