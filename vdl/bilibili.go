package vdl

import (
	"net/url"
	"regexp"
	"strings"
)

var bilibiliHostRegex = regexp.MustCompile(`(^|\.)bilibili\.com$`)

// IsBilibiliURL reports whether rawURL points at bilibili.com or one of
// its subdomains.
func IsBilibiliURL(rawURL string) bool {
	if rawURL == "" {
		return false
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return bilibiliHostRegex.MatchString(u.Hostname())
}

// NormalizeBilibiliURL strips tracking parameters from a Bilibili URL,
// keeping only the page-index parameter p. Non-Bilibili URLs and
// unparseable input are returned unchanged.
func NormalizeBilibiliURL(rawURL string) string {
	if !IsBilibiliURL(rawURL) {
		return rawURL
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}

	normalized := u.Scheme + "://" + u.Host + strings.TrimSuffix(u.Path, "/")
	if p := u.Query().Get("p"); p != "" {
		normalized += "?p=" + p
	}
	return normalized
}
