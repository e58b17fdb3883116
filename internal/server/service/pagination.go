package service

import (
	"math"
	"strconv"
	"strings"

	"github.com/IvanChernomyrdin/go-tabkeeper/internal/server/config"
	"github.com/IvanChernomyrdin/go-tabkeeper/internal/server/models"
)

// ParsePage разбирает offset (номер страницы с 1) и count (размер страницы)
// из строковых параметров запроса.
//
// Нечисловые, пустые и неположительные значения заменяются дефолтами,
// count сверх MaxPageSize урезается.
func ParsePage(offset, count string, cfg config.TabsConfig) models.Page {
	p := models.Page{
		Offset: positiveOr(offset, 1),
		Count:  positiveOr(count, cfg.DefaultPageSize),
	}
	if cfg.MaxPageSize > 0 && p.Count > cfg.MaxPageSize {
		p.Count = cfg.MaxPageSize
	}
	// (offset-1)*count не должен переполнять int32 в OFFSET
	if maxOffset := math.MaxInt32/p.Count + 1; p.Offset > maxOffset {
		p.Offset = maxOffset
	}
	return p
}

func positiveOr(raw string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n <= 0 {
		return def
	}
	return n
}
