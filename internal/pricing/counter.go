package pricing

// CountItems tallies how many times each product code occurs in items.
// Every character is counted, including whitespace and codes no rule
// prices; rules simply ignore the codes they do not target.
func CountItems(items string) map[rune]int {
	counts := make(map[rune]int)
	for _, code := range items {
		counts[code]++
	}
	return counts
}
