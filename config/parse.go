package config

import (
	"bufio"
	"regexp"
	"strings"

	"readflow"
)

// multiValueKeys are rule-file keys that append to a SiteConfig slice
// field: the merge-list fields plus author, date, test_url, find_string
// and replace_string.
var multiValueKeys = map[string]func(*readflow.SiteConfig, string){
	"title":              func(c *readflow.SiteConfig, v string) { c.Title = append(c.Title, v) },
	"body":               func(c *readflow.SiteConfig, v string) { c.Body = append(c.Body, v) },
	"author":             func(c *readflow.SiteConfig, v string) { c.Author = append(c.Author, v) },
	"date":               func(c *readflow.SiteConfig, v string) { c.Date = append(c.Date, v) },
	"strip":              func(c *readflow.SiteConfig, v string) { c.Strip = append(c.Strip, v) },
	"strip_id_or_class":  func(c *readflow.SiteConfig, v string) { c.StripIDOrClass = append(c.StripIDOrClass, v) },
	"strip_image_src":    func(c *readflow.SiteConfig, v string) { c.StripImageSrc = append(c.StripImageSrc, v) },
	"single_page_link":   func(c *readflow.SiteConfig, v string) { c.SinglePageLink = append(c.SinglePageLink, v) },
	"next_page_link":     func(c *readflow.SiteConfig, v string) { c.NextPageLink = append(c.NextPageLink, v) },
	"http_header":        func(c *readflow.SiteConfig, v string) { c.HTTPHeader = append(c.HTTPHeader, v) },
	"test_url":           func(c *readflow.SiteConfig, v string) { c.TestURL = append(c.TestURL, v) },
	"find_string":        func(c *readflow.SiteConfig, v string) { c.FindString = append(c.FindString, v) },
	"replace_string":     func(c *readflow.SiteConfig, v string) { c.ReplaceString = append(c.ReplaceString, v) },
}

// boolKeys are rule-file keys that set a tri-state boolean.
var boolKeys = map[string]func(*readflow.SiteConfig, readflow.OptBool){
	"tidy":                  func(c *readflow.SiteConfig, v readflow.OptBool) { c.Tidy = v },
	"prune":                 func(c *readflow.SiteConfig, v readflow.OptBool) { c.Prune = v },
	"autodetect_on_failure": func(c *readflow.SiteConfig, v readflow.OptBool) { c.AutodetectOnFailure = v },
}

// replaceStringSugarRe matches the "replace_string(<pattern>): <replacement>"
// form against the full line, before the generic key:value colon split
// runs — the pattern itself may contain colons (e.g. a URL), so it
// must never be cut at the first one.
var replaceStringSugarRe = regexp.MustCompile(`^replace_string\((.*?)\)\s*:\s*(.*)$`)

// ParseSiteConfig parses the rule-file contents in text and returns the
// resulting SiteConfig. A file with no usable lines (empty, or
// comment-only) yields ok=false; this is not fatal, and callers treat
// it as "no config for this host".
func ParseSiteConfig(text string) (cfg *readflow.SiteConfig, ok bool) {
	c := &readflow.SiteConfig{}
	usable := false

	scanner := bufio.NewScanner(strings.NewReader(text))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if m := replaceStringSugarRe.FindStringSubmatch(line); m != nil {
			replacement := strings.TrimSpace(m[2])
			if replacement != "" {
				c.FindString = append(c.FindString, m[1])
				c.ReplaceString = append(c.ReplaceString, replacement)
				usable = true
			}
			continue
		}

		idx := strings.Index(line, ":")
		if idx < 0 {
			continue
		}
		key := strings.TrimSpace(line[:idx])
		value := strings.TrimSpace(line[idx+1:])
		if key == "" || value == "" {
			continue
		}

		lowerKey := strings.ToLower(key)

		if apply, isMulti := multiValueKeys[lowerKey]; isMulti {
			apply(c, value)
			usable = true
			continue
		}

		if apply, isBool := boolKeys[lowerKey]; isBool {
			v := strings.EqualFold(value, "yes") || strings.EqualFold(value, "true")
			if v {
				apply(c, readflow.BoolTrue())
			} else {
				apply(c, readflow.BoolFalse())
			}
			usable = true
			continue
		}

		if lowerKey == "parser" {
			parser := value
			c.ParserName = &parser
			usable = true
			continue
		}
	}

	if !usable {
		return nil, false
	}
	return c, true
}
