// Package nlp наивный regex-парсер итальянских фраз о брони.
// Никакого ML: только шаблоны вида "domani alle 20 per tre persone".
// Работает на транскрипте распознавания речи, поэтому терпим к
// регистру и лишним пробелам.
package nlp

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ParsedReservation результат разбора фразы
type ParsedReservation struct {
	Date      string // YYYY-MM-DD
	Time      string // HH:MM
	PartySize int
}

// DefaultPartySize используется, когда фраза не называет число персон
const DefaultPartySize = 2

var (
	// "alle 20", "alle ore 20:30", "per le 19.30"
	timeRe = regexp.MustCompile(`(?:alle|per le)\s+(?:ore\s+)?(\d{1,2})(?:[:.](\d{2}))?`)

	// "per tre persone", "per 4 persone", "in due", "siamo in quattro"
	partyDigitsRe = regexp.MustCompile(`(?:per|siamo in|in)\s+(\d{1,2})\s*(?:persone|persona)?`)
	partyWordsRe  = regexp.MustCompile(`(?:per|siamo in|in)\s+(una|due|tre|quattro|cinque|sei|sette|otto|nove|dieci|undici|dodici)\s*(?:persone|persona)?`)

	numberWords = map[string]int{
		"una": 1, "due": 2, "tre": 3, "quattro": 4,
		"cinque": 5, "sei": 6, "sette": 7, "otto": 8,
		"nove": 9, "dieci": 10, "undici": 11, "dodici": 12,
	}
)

// Parse разбирает фразу относительно момента now (в таймзоне ресторана).
// Ошибка возвращается только если не удалось извлечь время - дата
// по умолчанию "oggi", число персон по умолчанию DefaultPartySize.
func Parse(text string, now time.Time) (*ParsedReservation, error) {
	normalized := strings.ToLower(strings.TrimSpace(text))
	if normalized == "" {
		return nil, fmt.Errorf("nlp: empty text")
	}

	result := &ParsedReservation{
		Date:      parseDate(normalized, now),
		PartySize: parseParty(normalized),
	}

	timeStr, err := parseTime(normalized)
	if err != nil {
		return nil, err
	}
	result.Time = timeStr

	return result, nil
}

func parseDate(text string, now time.Time) string {
	day := now
	switch {
	case strings.Contains(text, "dopodomani"):
		day = now.AddDate(0, 0, 2)
	case strings.Contains(text, "domani"):
		day = now.AddDate(0, 0, 1)
	case strings.Contains(text, "stasera"), strings.Contains(text, "oggi"):
		// сегодня
	}
	return day.Format("2006-01-02")
}

func parseTime(text string) (string, error) {
	m := timeRe.FindStringSubmatch(text)
	if m == nil {
		return "", fmt.Errorf("nlp: no time found in %q", text)
	}

	hour, err := strconv.Atoi(m[1])
	if err != nil || hour > 23 {
		return "", fmt.Errorf("nlp: bad hour %q", m[1])
	}

	minute := 0
	if m[2] != "" {
		minute, err = strconv.Atoi(m[2])
		if err != nil || minute > 59 {
			return "", fmt.Errorf("nlp: bad minute %q", m[2])
		}
	}

	return fmt.Sprintf("%02d:%02d", hour, minute), nil
}

func parseParty(text string) int {
	if m := partyDigitsRe.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n > 0 {
			return n
		}
	}
	if m := partyWordsRe.FindStringSubmatch(text); m != nil {
		if n, ok := numberWords[m[1]]; ok {
			return n
		}
	}
	return DefaultPartySize
}
