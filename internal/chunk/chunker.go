package chunk

import (
	"regexp"
	"strings"
)

// Separator joins paragraphs within a chunk and chunks within the final
// document. It matches the paragraph break produced by Normalize.
const Separator = "\n\n"

// DefaultMaxChunkSize is the default maximum chunk size in characters.
// Too small means too many API calls, too large and translations start
// to fail or degrade.
const DefaultMaxChunkSize = 2000

// Chunk is one bounded-size segment of the source document.
type Chunk struct {
	Index int
	Text  string
}

// Len returns the chunk length in bytes.
func (c Chunk) Len() int {
	return len(c.Text)
}

var (
	multiNewlineRe = regexp.MustCompile(`\n\s*\n\s*\n+`)
	spaceRunRe     = regexp.MustCompile(`[ \t]+`)
)

// Normalize collapses runs of 3+ newlines to a single paragraph break and
// runs of spaces/tabs to a single space. Normalize is idempotent.
func Normalize(text string) string {
	text = multiNewlineRe.ReplaceAllString(text, Separator)
	return spaceRunRe.ReplaceAllString(text, " ")
}

// Split breaks text into chunks of at most maxChunkSize characters,
// packing whole paragraphs greedily and falling back to sentence
// boundaries for paragraphs that exceed the limit on their own. A single
// sentence longer than maxChunkSize is emitted whole as an oversized
// chunk; text is never cut mid-sentence and never dropped. Empty input
// yields no chunks.
func Split(text string, maxChunkSize int) []Chunk {
	if maxChunkSize <= 0 {
		maxChunkSize = DefaultMaxChunkSize
	}
	text = Normalize(text)

	var chunks []Chunk
	current := ""

	emit := func() {
		if t := strings.TrimSpace(current); t != "" {
			chunks = append(chunks, Chunk{Index: len(chunks), Text: t})
		}
		current = ""
	}

	for _, paragraph := range strings.Split(text, Separator) {
		paragraph = strings.TrimSpace(paragraph)
		if paragraph == "" {
			continue
		}

		if len(current)+len(paragraph)+len(Separator) > maxChunkSize {
			emit()

			// A single paragraph over the limit is repacked at
			// sentence granularity.
			if len(paragraph) > maxChunkSize {
				for _, sentence := range splitSentences(paragraph) {
					if len(current)+len(sentence)+1 > maxChunkSize {
						emit()
					}
					current += sentence + " "
				}
			} else {
				current = paragraph
			}
		} else {
			if current != "" {
				current += Separator + paragraph
			} else {
				current = paragraph
			}
		}
	}

	emit()
	return chunks
}

// splitSentences splits a paragraph after end-of-sentence punctuation
// followed by whitespace. The punctuation stays with its sentence and the
// separating whitespace is consumed.
func splitSentences(paragraph string) []string {
	var sentences []string
	start := 0
	for i := 0; i < len(paragraph); i++ {
		switch paragraph[i] {
		case '.', '!', '?':
			if i+1 < len(paragraph) && isSpace(paragraph[i+1]) {
				sentences = append(sentences, paragraph[start:i+1])
				j := i + 1
				for j < len(paragraph) && isSpace(paragraph[j]) {
					j++
				}
				start = j
				i = j - 1
			}
		}
	}
	if start < len(paragraph) {
		sentences = append(sentences, paragraph[start:])
	}
	return sentences
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}
