// Package feeds fetches current headlines from public RSS/Atom feeds,
// grouped by interest topic.
package feeds

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Item is a single headline pulled from a feed
type Item struct {
	Title string `json:"title"`
	Link  string `json:"link"`
}

// DefaultCatalog maps interest topics to freely available feeds
func DefaultCatalog() map[string][]string {
	return map[string][]string{
		"News": {
			"https://rss.dw.com/rdf/rss-en-ger",
			"https://feeds.bbci.co.uk/news/world/rss.xml",
		},
		"Technology": {
			"https://www.heise.de/rss/heise-top-atom.xml",
			"https://www.theverge.com/rss/index.xml",
		},
		"Science": {
			"https://www.sciencenews.org/feed",
		},
	}
}

// Client fetches and parses feeds for interest topics
type Client struct {
	catalog    map[string][]string
	httpClient *http.Client
}

// NewClient creates a feed client over the given topic catalog
func NewClient(catalog map[string][]string, timeout time.Duration) *Client {
	return &Client{
		catalog:    catalog,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// rssFeed covers RSS 2.0 documents
type rssFeed struct {
	Items []rssItem `xml:"channel>item"`
}

type rssItem struct {
	Title string `xml:"title"`
	Link  string `xml:"link"`
}

// rdfFeed covers RSS 1.0 / RDF documents (DW ships RDF); items sit
// beside the channel element rather than inside it
type rdfFeed struct {
	Items []rssItem `xml:"item"`
}

// atomFeed covers Atom documents (heise ships Atom, not RSS)
type atomFeed struct {
	Entries []atomEntry `xml:"entry"`
}

type atomEntry struct {
	Title string     `xml:"title"`
	Links []atomLink `xml:"link"`
}

type atomLink struct {
	Href string `xml:"href,attr"`
	Rel  string `xml:"rel,attr"`
}

// FetchLatest returns up to limit items for a topic, walking the topic's
// feeds in order. Individual feed failures are skipped; the error returned
// is the last fetch error and only meaningful when no items were found.
func (c *Client) FetchLatest(ctx context.Context, topic string, limit int) ([]Item, error) {
	urls := c.catalog[topic]
	if len(urls) == 0 {
		return nil, nil
	}

	var items []Item
	var lastErr error
	for _, url := range urls {
		if len(items) >= limit {
			break
		}
		fetched, err := c.fetchFeed(ctx, url)
		if err != nil {
			lastErr = err
			continue
		}
		for _, item := range fetched {
			if len(items) >= limit {
				break
			}
			if item.Title == "" {
				continue
			}
			items = append(items, item)
		}
	}

	if len(items) == 0 && lastErr != nil {
		return nil, lastErr
	}
	return items, nil
}

// fetchFeed downloads one feed document and parses it as RSS, falling back to Atom
func (c *Client) fetchFeed(ctx context.Context, url string) ([]Item, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "daybrief/1.0 (+https://github.com/jmertens/daybrief)")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("feed %s returned status %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, fmt.Errorf("failed to read feed %s: %w", url, err)
	}

	return parseFeed(body)
}

func parseFeed(data []byte) ([]Item, error) {
	var rss rssFeed
	if err := xml.Unmarshal(data, &rss); err == nil && len(rss.Items) > 0 {
		items := make([]Item, 0, len(rss.Items))
		for _, it := range rss.Items {
			items = append(items, Item{Title: it.Title, Link: it.Link})
		}
		return items, nil
	}

	var rdf rdfFeed
	if err := xml.Unmarshal(data, &rdf); err == nil && len(rdf.Items) > 0 {
		items := make([]Item, 0, len(rdf.Items))
		for _, it := range rdf.Items {
			items = append(items, Item{Title: it.Title, Link: it.Link})
		}
		return items, nil
	}

	var atom atomFeed
	if err := xml.Unmarshal(data, &atom); err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}
	items := make([]Item, 0, len(atom.Entries))
	for _, entry := range atom.Entries {
		items = append(items, Item{Title: entry.Title, Link: entry.link()})
	}
	return items, nil
}

// link picks the alternate link when present, otherwise the first link
func (e atomEntry) link() string {
	for _, l := range e.Links {
		if l.Rel == "" || l.Rel == "alternate" {
			return l.Href
		}
	}
	if len(e.Links) > 0 {
		return e.Links[0].Href
	}
	return ""
}
