package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/cardswap/matchmaker/cardswap/config"
	"github.com/cardswap/matchmaker/internal/domain/matchmaking"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const (
	SheetCollection = "Collection"
	SheetMostWanted = "Most wanted"
	SheetRarest     = "Rarest"
	SheetPrices     = "Prices"
)

// CollectionRow is one owned card joined with its catalog metadata.
type CollectionRow struct {
	matchmaking.UserCard
	Card    matchmaking.CardMeta
	Variant matchmaking.Variant
}

type ExportResult struct {
	FileName string
	Data     []byte
	URL      string
}

type ExportService struct {
	store  matchmaking.Store
	engine matchmaking.Service
	spaces *SpacesService
}

// NewExportService wires the exporter; spaces may be nil to skip uploads.
func NewExportService(store matchmaking.Store, engine matchmaking.Service, spaces *SpacesService) *ExportService {
	return &ExportService{store: store, engine: engine, spaces: spaces}
}

func (s *ExportService) Export(ctx context.Context, userID int64, username string, upload bool) (*ExportResult, error) {
	insights, err := s.engine.MarketInsights(ctx, userID)
	if err != nil {
		return nil, err
	}
	rows, err := s.collection(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	f, err := BuildWorkbook(rows, insights)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to render workbook: %w", err)
	}

	res := &ExportResult{
		FileName: fmt.Sprintf("%s-%s.xlsx", username, now.Format(config.ExportDateFormat)),
		Data:     buf.Bytes(),
	}
	if upload {
		if s.spaces == nil {
			return nil, fmt.Errorf("upload requested but spaces is not configured")
		}
		if res.URL, err = s.spaces.UploadExport(ctx, res.FileName, res.Data); err != nil {
			return nil, err
		}
	}

	slog.Info("Collection exported",
		slog.String("type", "sys"),
		slog.Int64("user_id", userID),
		slog.Int("cards", len(rows)),
		slog.Int("bytes", len(res.Data)))
	return res, nil
}

func (s *ExportService) collection(ctx context.Context, userID int64) ([]CollectionRow, error) {
	owned, err := s.store.ListUserCards(ctx, userID)
	if err != nil {
		return nil, err
	}
	ids := make([]int64, 0, len(owned))
	seen := make(map[int64]bool, len(owned))
	for _, c := range owned {
		if !seen[c.BaseCardID] {
			seen[c.BaseCardID] = true
			ids = append(ids, c.BaseCardID)
		}
	}
	cards, err := s.store.CardMeta(ctx, ids)
	if err != nil {
		return nil, err
	}
	variants, err := s.store.VariantMeta(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]CollectionRow, 0, len(owned))
	for _, c := range owned {
		rows = append(rows, CollectionRow{UserCard: c, Card: cards[c.BaseCardID], Variant: variants[c.VariantID]})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Card.SeriesName != rows[j].Card.SeriesName {
			return rows[i].Card.SeriesName < rows[j].Card.SeriesName
		}
		return rows[i].Card.CardNumber < rows[j].Card.CardNumber
	})
	return rows, nil
}

// BuildWorkbook lays the collection and the insight reports out on one sheet each.
func BuildWorkbook(rows []CollectionRow, insights *matchmaking.MarketInsights) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetCollection); err != nil {
		return nil, err
	}
	for _, name := range []string{SheetMostWanted, SheetRarest, SheetPrices} {
		if _, err := f.NewSheet(name); err != nil {
			return nil, err
		}
	}

	w := sheetWriter{f: f}
	w.row(SheetCollection, "Number", "Player", "Team", "Series", "Year", "Variant", "Rarity", "Status", "Price", "Condition", "Added")
	for _, r := range rows {
		added := ""
		if !r.AddedAt.IsZero() {
			added = r.AddedAt.Format(config.ExportDateFormat)
		}
		w.row(SheetCollection,
			r.Card.CardNumber, r.Card.PlayerName, r.Card.Team, r.Card.SeriesName, r.Card.SeriesYear,
			r.Variant.Name, matchmaking.RarityText(r.Variant.Rarity), string(r.Status), nullable(r.Price), r.Condition, added)
	}

	if insights != nil {
		w.row(SheetMostWanted, "Number", "Player", "Variant", "Rarity", "Demand", "Status")
		for _, r := range insights.MostWanted {
			w.row(SheetMostWanted, r.Card.CardNumber, r.Card.PlayerName, r.Variant.Name,
				matchmaking.RarityText(r.Variant.Rarity), r.Demand, string(r.Status))
		}

		w.row(SheetRarest, "Number", "Player", "Variant", "Rarity", "Copies in existence")
		for _, r := range insights.Rarest {
			w.row(SheetRarest, r.Card.CardNumber, r.Card.PlayerName, r.Variant.Name,
				matchmaking.RarityText(r.Variant.Rarity), r.TotalCopies)
		}

		w.row(SheetPrices, "Number", "Player", "Variant", "Your price", "Market avg", "Market min", "Market max", "Samples", "Recommendation")
		for _, r := range insights.PriceComparisons {
			w.row(SheetPrices, r.Card.CardNumber, r.Card.PlayerName, r.Variant.Name, nullable(r.OwnPrice),
				r.Market.Avg.Round(2).InexactFloat64(), r.Market.Min.InexactFloat64(), r.Market.Max.InexactFloat64(),
				r.Market.Samples, r.Recommendation.Message)
		}
	}

	if w.err != nil {
		f.Close()
		return nil, w.err
	}
	f.SetActiveSheet(0)
	return f, nil
}

// sheetWriter appends rows per sheet and keeps the first error.
type sheetWriter struct {
	f    *excelize.File
	next map[string]int
	err  error
}

func (w *sheetWriter) row(sheet string, values ...any) {
	if w.err != nil {
		return
	}
	if w.next == nil {
		w.next = make(map[string]int)
	}
	w.next[sheet]++
	cell, err := excelize.CoordinatesToCellName(1, w.next[sheet])
	if err != nil {
		w.err = err
		return
	}
	w.err = w.f.SetSheetRow(sheet, cell, &values)
}

func nullable(d decimal.NullDecimal) any {
	if !d.Valid {
		return ""
	}
	return d.Decimal.InexactFloat64()
}
