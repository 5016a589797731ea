// Package extract harvests words, email addresses, and metadata strings
// from already-captured HTML pages and plain text files. It performs no
// network access; fetching pages is outside this tool.
package extract

import (
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/html"
)

const emailPattern = `\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`

// stopWords are dropped from extraction results; passwords are rarely
// built from bare function words.
var stopWords = map[string]struct{}{}

func init() {
	for _, w := range []string{
		"the", "and", "for", "are", "but", "not", "you", "all", "can", "had",
		"her", "was", "one", "our", "out", "day", "get", "has", "him", "his",
		"how", "its", "may", "new", "now", "old", "see", "two", "who", "boy",
		"did", "man", "men", "put", "say", "she", "too", "use", "will", "with",
		"this", "that", "they", "have", "from", "been", "than", "what", "some",
		"time", "very", "when", "come", "here", "just", "like", "long", "make",
		"many", "over", "such", "take", "them", "well", "were", "good", "much",
	} {
		stopWords[w] = struct{}{}
	}
}

// metadataAttrs are the element attributes mined for metadata strings.
var metadataAttrs = map[string]struct{}{
	"alt":         {},
	"title":       {},
	"placeholder": {},
	"aria-label":  {},
}

// Results carries everything harvested from the input files, deduplicated
// and sorted.
type Results struct {
	Words      []string
	Emails     []string
	Metadata   []string
	WordGroups []string
}

// Extractor scans files under one length/grouping configuration.
type Extractor struct {
	groupSize int
	wordRe    *regexp.Regexp
	emailRe   *regexp.Regexp
	log       logrus.FieldLogger
}

// New builds an extractor accepting words of minLen..maxLen letters and
// producing space-joined n-grams of groupSize (0 disables groups).
func New(minLen, maxLen, groupSize int) (*Extractor, error) {
	if minLen <= 0 {
		minLen = 3
	}
	if maxLen < minLen {
		return nil, fmt.Errorf("extract: max word length %d below minimum %d", maxLen, minLen)
	}
	wordRe, err := regexp.Compile(fmt.Sprintf(`\b[a-zA-Z]{%d,%d}\b`, minLen, maxLen))
	if err != nil {
		return nil, err
	}
	return &Extractor{
		groupSize: groupSize,
		wordRe:    wordRe,
		emailRe:   regexp.MustCompile(emailPattern),
		log:       logrus.StandardLogger(),
	}, nil
}

// ExtractFiles processes every path and merges the results. Unreadable
// files are logged and skipped, not fatal.
func (x *Extractor) ExtractFiles(paths []string) *Results {
	words := make(map[string]struct{})
	emails := make(map[string]struct{})
	metadata := make(map[string]struct{})

	for _, path := range paths {
		content, err := os.ReadFile(path)
		if err != nil {
			x.log.WithField("path", path).Warnf("skipping unreadable file: %v", err)
			continue
		}
		x.extractContent(string(content), isHTMLName(path), words, emails, metadata)
	}

	res := &Results{
		Words:    sortedKeys(words),
		Emails:   sortedKeys(emails),
		Metadata: sortedKeys(metadata),
	}
	if x.groupSize > 1 {
		res.WordGroups = wordGroups(res.Words, x.groupSize)
	}
	return res
}

// ExtractString is the single-document entry point used by tests and by
// callers that already hold page content in memory.
func (x *Extractor) ExtractString(content string, isHTML bool) *Results {
	words := make(map[string]struct{})
	emails := make(map[string]struct{})
	metadata := make(map[string]struct{})
	x.extractContent(content, isHTML, words, emails, metadata)
	res := &Results{
		Words:    sortedKeys(words),
		Emails:   sortedKeys(emails),
		Metadata: sortedKeys(metadata),
	}
	if x.groupSize > 1 {
		res.WordGroups = wordGroups(res.Words, x.groupSize)
	}
	return res
}

func (x *Extractor) extractContent(content string, isHTML bool, words, emails, metadata map[string]struct{}) {
	for _, m := range x.emailRe.FindAllString(content, -1) {
		emails[strings.ToLower(m)] = struct{}{}
	}
	if !isHTML {
		x.addWords(content, words)
		return
	}

	doc, err := html.Parse(strings.NewReader(content))
	if err != nil {
		// salvage what the word regex can find in the raw bytes
		x.addWords(content, words)
		return
	}
	x.walk(doc, words, metadata)
	for meta := range metadata {
		x.addWords(meta, words)
	}
}

// walk visits the node tree, collecting text content as words and
// harvesting metadata-bearing attributes and meta tags. Script and style
// subtrees carry no natural language and are skipped.
func (x *Extractor) walk(n *html.Node, words, metadata map[string]struct{}) {
	if n.Type == html.ElementNode {
		switch n.Data {
		case "script", "style", "noscript":
			return
		case "meta":
			var name, content string
			for _, attr := range n.Attr {
				switch attr.Key {
				case "name", "property":
					name = attr.Val
				case "content":
					content = attr.Val
				}
			}
			if name != "" && content != "" {
				metadata[strings.TrimSpace(content)] = struct{}{}
			}
		}
		for _, attr := range n.Attr {
			if _, ok := metadataAttrs[attr.Key]; ok && strings.TrimSpace(attr.Val) != "" {
				metadata[strings.TrimSpace(attr.Val)] = struct{}{}
			}
		}
	}
	if n.Type == html.TextNode {
		x.addWords(n.Data, words)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		x.walk(c, words, metadata)
	}
}

func (x *Extractor) addWords(text string, words map[string]struct{}) {
	for _, m := range x.wordRe.FindAllString(text, -1) {
		w := strings.ToLower(m)
		if _, stop := stopWords[w]; stop {
			continue
		}
		words[w] = struct{}{}
	}
}

// wordGroups joins consecutive words from the sorted list into space
// separated n-grams.
func wordGroups(words []string, size int) []string {
	if len(words) < size {
		return nil
	}
	groups := make([]string, 0, len(words)-size+1)
	for i := 0; i+size <= len(words); i++ {
		groups = append(groups, strings.Join(words[i:i+size], " "))
	}
	return groups
}

func isHTMLName(path string) bool {
	lower := strings.ToLower(path)
	return strings.HasSuffix(lower, ".html") || strings.HasSuffix(lower, ".htm")
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
