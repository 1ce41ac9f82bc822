// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package engagement

import (
	"math"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/Miguelch7/RLGC-producthuntnext/internal/platform/sec"
	"github.com/Miguelch7/RLGC-producthuntnext/internal/product"
)

// # Detail View

// CommentView is a comment annotated for display.
type CommentView struct {
	product.Comment
	IsCreator bool `json:"esCreador"`
}

// Detail is the product detail page as seen by one actor.
type Detail struct {
	*product.Product
	Comments     []CommentView `json:"comentarios"`
	VoteCount    int           `json:"totalVotos"`
	HasVoted     bool          `json:"yaVotaste"`
	CanDelete    bool          `json:"puedeBorrar"`
	PublishedAgo string        `json:"publicadoHace"`
}

// spanishMagnitudes renders relative times as "hace 3 minutos".
var spanishMagnitudes = []humanize.RelTimeMagnitude{
	{D: time.Second, Format: "ahora", DivBy: time.Second},
	{D: 2 * time.Second, Format: "%s 1 segundo", DivBy: 1},
	{D: time.Minute, Format: "%s %d segundos", DivBy: time.Second},
	{D: 2 * time.Minute, Format: "%s 1 minuto", DivBy: 1},
	{D: time.Hour, Format: "%s %d minutos", DivBy: time.Minute},
	{D: 2 * time.Hour, Format: "%s 1 hora", DivBy: 1},
	{D: humanize.Day, Format: "%s %d horas", DivBy: time.Hour},
	{D: 2 * humanize.Day, Format: "%s 1 día", DivBy: 1},
	{D: humanize.Week, Format: "%s %d días", DivBy: humanize.Day},
	{D: 2 * humanize.Week, Format: "%s 1 semana", DivBy: 1},
	{D: humanize.Month, Format: "%s %d semanas", DivBy: humanize.Week},
	{D: 2 * humanize.Month, Format: "%s 1 mes", DivBy: 1},
	{D: humanize.Year, Format: "%s %d meses", DivBy: humanize.Month},
	{D: 2 * humanize.Year, Format: "%s 1 año", DivBy: 1},
	{D: math.MaxInt64, Format: "%s %d años", DivBy: humanize.Year},
}

// PublishedAgo renders how long ago created is, relative to now, in Spanish.
func PublishedAgo(created, now time.Time) string {
	return humanize.CustomRelTime(created, now, "hace", "dentro de", spanishMagnitudes)
}

// NewDetail builds the detail view of record for actor (nil when anonymous).
func NewDetail(record *product.Product, actor *sec.Actor, now time.Time) Detail {
	comments := make([]CommentView, 0, len(record.Comments))
	for _, comment := range record.Comments {
		comments = append(comments, CommentView{
			Comment:   comment,
			IsCreator: IsCreator(record, comment.UserID),
		})
	}

	hasVoted := false
	if actor != nil && actor.ID != "" {
		hasVoted = record.HasVoted(actor.ID)
	}

	return Detail{
		Product:      record,
		Comments:     comments,
		VoteCount:    record.VoteCount(),
		HasVoted:     hasVoted,
		CanDelete:    CanDelete(actor, record),
		PublishedAgo: PublishedAgo(record.CreatedAt, now),
	}
}
