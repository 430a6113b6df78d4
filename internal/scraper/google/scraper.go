package google

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strings"

	"github.com/playwright-community/playwright-go"

	"go-career-watcher/internal/config"
	"go-career-watcher/internal/models"
	"go-career-watcher/internal/scraper"
	"go-career-watcher/utils"
)

// Scraper pages through the Google Careers results view in a headless
// browser. The results are rendered client-side, so a plain GET returns
// nothing useful.
type Scraper struct {
	cfg  *config.Config
	page playwright.Page
}

func NewScraper(cfg *config.Config, page playwright.Page) *Scraper {
	return &Scraper{cfg: cfg, page: page}
}

func (s *Scraper) Name() string {
	return "GoogleCareers"
}

// searchURL builds the paged query. The original site expects the query
// wrapped in literal quotes and %20 for spaces, not '+'.
func (s *Scraper) searchURL(page int) string {
	q := strings.ReplaceAll(url.QueryEscape(s.cfg.Query), "+", "%20")
	return fmt.Sprintf("%s?q=%%22%s%%22&location=%s&target_level=%s&page=%d",
		s.cfg.BaseURL,
		q,
		url.QueryEscape(s.cfg.Location),
		url.QueryEscape(s.cfg.Level),
		page,
	)
}

func (s *Scraper) FetchPage(ctx context.Context, n int) ([]string, error) {
	target := s.searchURL(n)
	log.Printf("  🔍 Crawling page %d: %s", n, target)

	if _, err := s.page.Goto(target, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
		Timeout:   playwright.Float(30000),
	}); err != nil {
		return nil, fmt.Errorf("failed to load results page %d: %w", n, err)
	}

	//let the client-side render settle
	utils.RandomDelay(s.cfg.PageDelayMs, s.cfg.PageDelayMs+1000)
	utils.MouseJiggle(s.page)
	utils.SmoothScroll(s.page)

	//collect absolute hrefs; the DOM keeps them relative
	raw, err := s.page.Evaluate(`Array.from(document.querySelectorAll('a[href]')).map(a => a.href)`)
	if err != nil {
		return nil, fmt.Errorf("failed to collect links on page %d: %w", n, err)
	}

	items, ok := raw.([]interface{})
	if !ok {
		return nil, fmt.Errorf("unexpected link collection result on page %d", n)
	}

	//keep only listing detail links, one per href
	seen := make(map[string]bool)
	var links []string
	for _, item := range items {
		href, ok := item.(string)
		if !ok || !strings.HasPrefix(href, s.cfg.BaseURL) {
			continue
		}
		if href == strings.TrimRight(s.cfg.BaseURL, "/") || href == s.cfg.BaseURL {
			continue
		}
		if !seen[href] {
			seen[href] = true
			links = append(links, href)
		}
	}
	return links, nil
}

func (s *Scraper) Parse(fragment string) (models.Listing, bool) {
	return scraper.ParseLink(fragment)
}

// detailScript walks h2/h3/h4 headers and gathers sibling <ul>/<p> content
// until the next header, per labeled section.
const detailScript = `() => {
	const labels = ['Minimum qualifications', 'Preferred qualifications', 'About the job', 'Responsibilities'];
	const headers = Array.from(document.querySelectorAll('h2,h3,h4'));
	const out = {};
	for (const label of labels) {
		const header = headers.find(h => h.textContent.includes(label));
		if (!header) continue;
		const items = [];
		let sib = header.nextElementSibling;
		while (sib && !['H2', 'H3', 'H4'].includes(sib.tagName)) {
			if (sib.tagName === 'UL') {
				sib.querySelectorAll('li').forEach(li => items.push(li.textContent.trim()));
			} else if (sib.tagName === 'P') {
				items.push(sib.textContent.trim());
			}
			sib = sib.nextElementSibling;
		}
		out[label] = items;
	}
	return out;
}`

func (s *Scraper) FetchDetail(ctx context.Context, link string) (scraper.Sections, error) {
	var sections scraper.Sections

	if _, err := s.page.Goto(link, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
		Timeout:   playwright.Float(30000),
	}); err != nil {
		return sections, fmt.Errorf("failed to load detail page: %w", err)
	}

	utils.RandomDelay(s.cfg.PageDelayMs, s.cfg.PageDelayMs+1000)

	raw, err := s.page.Evaluate(detailScript)
	if err != nil {
		return sections, fmt.Errorf("failed to extract detail sections: %w", err)
	}

	byLabel, ok := raw.(map[string]interface{})
	if !ok {
		return sections, fmt.Errorf("unexpected detail extraction result")
	}

	sections.MinimumQualifications = toStrings(byLabel["Minimum qualifications"])
	sections.PreferredQualifications = toStrings(byLabel["Preferred qualifications"])
	sections.AboutTheJob = toStrings(byLabel["About the job"])
	sections.Responsibilities = toStrings(byLabel["Responsibilities"])
	return sections, nil
}

func toStrings(v interface{}) []string {
	items, ok := v.([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	return out
}
