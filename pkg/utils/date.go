package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

var daysAgoPattern = regexp.MustCompile(`^(\d+)daysAgo$`)

// ParseDateToken converte um token de data relativo ("today", "yesterday",
// "30daysAgo") ou absoluto ("2024-01-31") em um instante concreto.
// Tokens relativos de fim ("today"/"yesterday") resolvem para o fim do dia;
// "NdaysAgo" resolve para o início do dia. Tokens malformados retornam erro
// em vez de cair em um instante inválido.
func ParseDateToken(token string, now time.Time) (time.Time, error) {
	switch token {
	case "today":
		return endOfDay(now), nil
	case "yesterday":
		return endOfDay(now.AddDate(0, 0, -1)), nil
	}

	if match := daysAgoPattern.FindStringSubmatch(token); match != nil {
		days, err := strconv.Atoi(match[1])
		if err != nil {
			return time.Time{}, fmt.Errorf("token de data inválido: %q", token)
		}
		return startOfDay(now.AddDate(0, 0, -days)), nil
	}

	date, err := time.ParseInLocation(time.DateOnly, token, now.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("token de data inválido: %q", token)
	}

	return date, nil
}

// NormalizeDateRange resolve os tokens de início e fim em instantes concretos
// e garante que o fim nunca antecede o início.
func NormalizeDateRange(start, end string, now time.Time) (time.Time, time.Time, error) {
	startDate, err := ParseDateToken(start, now)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	endDate, err := ParseDateToken(end, now)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	if endDate.Before(startDate) {
		return time.Time{}, time.Time{}, fmt.Errorf(
			"intervalo de datas inválido: fim (%s) anterior ao início (%s)",
			endDate.Format(time.DateOnly), startDate.Format(time.DateOnly),
		)
	}

	return startDate, endDate, nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}
