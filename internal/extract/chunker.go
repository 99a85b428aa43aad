package extract

import (
	"fmt"
	"strings"

	"github.com/claimlens/claimlens/internal/ingest"
)

// Buffer is the combined document text submitted for claim extraction:
// page texts interleaved with page-delimiter markers, plus an offset table
// mapping positions back to page numbers. Offsets are in runes so chunk
// boundaries never split a multi-byte character.
type Buffer struct {
	runes      []rune
	pageStarts []pageStart // ascending by offset
}

type pageStart struct {
	Offset int
	Number int
}

// Chunk is a bounded slice of the combined buffer
type Chunk struct {
	Text  string
	Start int // rune offset of the chunk within the buffer
}

// BuildBuffer concatenates non-empty page texts with page markers, recording
// where each page begins
func BuildBuffer(pages []ingest.Page) *Buffer {
	var sb strings.Builder
	b := &Buffer{}

	offset := 0
	for _, page := range pages {
		if strings.TrimSpace(page.Text) == "" {
			continue
		}

		section := fmt.Sprintf("\n\n--- Page %d ---\n\n%s", page.Number, page.Text)
		b.pageStarts = append(b.pageStarts, pageStart{Offset: offset, Number: page.Number})
		sb.WriteString(section)
		offset += len([]rune(section))
	}

	b.runes = []rune(sb.String())
	return b
}

// Len returns the buffer length in runes
func (b *Buffer) Len() int { return len(b.runes) }

// Chunks splits the buffer into a sliding window of up-to-size chunks
// advancing by stride, so claims spanning a chunk boundary fall entirely
// inside the next overlapping chunk. A buffer within the size threshold is a
// single chunk.
func (b *Buffer) Chunks(size, stride int) []Chunk {
	if size <= 0 || stride <= 0 || stride > size {
		size, stride = 12000, 10000
	}

	if len(b.runes) <= size {
		return []Chunk{{Text: string(b.runes), Start: 0}}
	}

	var chunks []Chunk
	for start := 0; start < len(b.runes); start += stride {
		end := start + size
		if end > len(b.runes) {
			end = len(b.runes)
		}
		chunks = append(chunks, Chunk{Text: string(b.runes[start:end]), Start: start})
	}

	return chunks
}

// PageAt returns the page number containing the given rune offset
func (b *Buffer) PageAt(offset int) int {
	if len(b.pageStarts) == 0 {
		return 1
	}

	page := b.pageStarts[0].Number
	for _, ps := range b.pageStarts {
		if ps.Offset > offset {
			break
		}
		page = ps.Number
	}
	return page
}

// locate returns the rune offset of needle within the chunk, or -1
func (c Chunk) locate(needle string) int {
	byteIdx := strings.Index(c.Text, needle)
	if byteIdx < 0 {
		return -1
	}
	return len([]rune(c.Text[:byteIdx]))
}
