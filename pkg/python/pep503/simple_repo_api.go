// Copyright (C) 2026  Ambassador Labs
//
// SPDX-License-Identifier: Apache-2.0

// Package pep503 implements the client side of PEP 503 -- Simple
// Repository API -- just far enough to answer "which files does the index
// already have for this project?".
//
// https://www.python.org/dev/peps/pep-0503/
package pep503

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

const PyPIBaseURL = "https://pypi.org/simple/"

type Client struct {
	BaseURL    string // defaults to PyPIBaseURL
	HTTPClient *http.Client
	UserAgent  string
}

func (c *Client) fillDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = PyPIBaseURL
	}
	if c.HTTPClient == nil {
		c.HTTPClient = http.DefaultClient
	}
	if c.UserAgent == "" {
		c.UserAgent = "github.com/datawire/disttool/pkg/python/pep503"
	}
}

type HTTPError struct {
	Status     string
	StatusCode int
}

func (e *HTTPError) Error() string {
	return "HTTP " + e.Status
}

// A Link is an anchor on a project page.  Text is the filename as
// published; HRef is resolved against the page's final URL, so it is
// usable even when the index speaks in relative links.
type Link struct {
	Text string
	HRef string
}

var nameSepRE = regexp.MustCompile(`[-_.]+`)

// Normalize normalizes a project name for use in Simple API URLs: runs of
// ".", "-", and "_" collapse to a single "-", and everything is
// lowercased.
func Normalize(name string) string {
	return strings.ToLower(nameSepRE.ReplaceAllLiteralString(name, "-"))
}

func (c Client) get(ctx context.Context, requestURL string) (_ *url.URL, _ []byte, err error) {
	defer func() {
		if err != nil {
			err = fmt.Errorf("GET %q => %w", requestURL, err)
		}
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("User-Agent", c.UserAgent)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, nil, err
	}
	content, err := io.ReadAll(resp.Body)
	if err != nil {
		_ = resp.Body.Close()
		return nil, nil, err
	}
	if err := resp.Body.Close(); err != nil {
		return nil, nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, nil, &HTTPError{Status: resp.Status, StatusCode: resp.StatusCode}
	}

	// resp.Request.URL reflects any redirects that happened.
	return resp.Request.URL, content, nil
}

// ProjectFiles fetches the project's page from the index and returns its
// file links.  The project name need not be normalized.  A project the
// index has never heard of comes back as an *HTTPError with StatusCode
// 404.
func (c Client) ProjectFiles(ctx context.Context, project string) ([]Link, error) {
	c.fillDefaults()

	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return nil, err
	}
	u.Path = path.Join(u.Path, Normalize(project)) + "/"

	location, content, err := c.get(ctx, u.String())
	if err != nil {
		return nil, err
	}
	doc, err := html.Parse(bytes.NewReader(content))
	if err != nil {
		return nil, err
	}

	var links []Link
	var walk func(*html.Node) error
	walk = func(node *html.Node) error {
		if node.Type == html.ElementNode && node.Data == "a" {
			link := Link{
				Text: nodeText(node),
			}
			for _, attr := range node.Attr {
				if attr.Namespace == "" && attr.Key == "href" {
					href, err := location.Parse(attr.Val)
					if err != nil {
						return err
					}
					link.HRef = href.String()
				}
			}
			links = append(links, link)
		}
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			if err := walk(child); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(doc); err != nil {
		return nil, err
	}
	return links, nil
}

func nodeText(node *html.Node) string {
	var text strings.Builder
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.TextNode {
			text.WriteString(node.Data)
		}
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(node)
	return strings.TrimSpace(text.String())
}
