package summarizer

// DefaultChunkSize is the chunk length in characters.
const DefaultChunkSize = 1000

// Chunk splits text into consecutive pieces of size characters. The last piece
// may be shorter. Pieces never split a UTF-8 sequence and concatenate back to
// text exactly. A non-positive size yields a single chunk.
func Chunk(text string, size int) []string {
	if text == "" {
		return nil
	}
	if size <= 0 {
		return []string{text}
	}

	chunks := make([]string, 0, len(text)/size+1)
	start, count := 0, 0
	for i := range text {
		if count == size {
			chunks = append(chunks, text[start:i])
			start, count = i, 0
		}
		count++
	}
	return append(chunks, text[start:])
}
