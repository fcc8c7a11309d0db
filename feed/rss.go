package feed

import (
	"encoding/xml"
	"fmt"
)

// rssDocument is a minimal RSS 2.0 parse target covering only item title
// and link (see DESIGN.md for why this uses encoding/xml directly).
type rssDocument struct {
	XMLName xml.Name `xml:"rss"`
	Channel struct {
		Items []struct {
			Title string `xml:"title"`
			Link  string `xml:"link"`
		} `xml:"item"`
	} `xml:"channel"`
}

// parseRSS extracts the articles referenced by an RSS feed body.
func parseRSS(body []byte, feedURL string) ([]Article, error) {
	var doc rssDocument
	if err := xml.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("parse rss feed %s: %w", feedURL, err)
	}

	articles := make([]Article, 0, len(doc.Channel.Items))
	for _, item := range doc.Channel.Items {
		if item.Link == "" {
			continue
		}
		articles = append(articles, Article{
			Title:   item.Title,
			URL:     item.Link,
			FeedURL: feedURL,
		})
	}
	return articles, nil
}
