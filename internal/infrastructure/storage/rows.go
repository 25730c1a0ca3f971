package storage

import (
	"context"

	"StartupContent/internal/domain"
)

// Positional decoders. Row layouts are fixed by the Table column sets in
// schema.go; callers pad rows before decoding.

func decodeArticle(row []string) domain.ArticleRow {
	return domain.ArticleRow{
		ID:               row[0],
		Title:            row[1],
		SourceURL:        row[2],
		Category:         row[3],
		PublicationDate:  row[4],
		CompanyName:      row[5],
		FundingAmount:    row[6],
		Content:          row[7],
		ProcessingDate:   row[8],
		ProcessingStatus: row[9],
	}
}

func decodeContent(row []string) domain.ContentRow {
	return domain.ContentRow{
		ID:            row[0],
		ArticleID:     row[1],
		Title:         row[2],
		SourceURL:     row[3],
		Category:      row[4],
		ContentType:   row[5],
		Language:      row[6],
		Body:          row[7],
		CreationDate:  row[8],
		Status:        row[9],
		ScheduledDate: row[10],
		ScheduledTime: row[11],
		Platform:      row[12],
		PublishedDate: row[13],
		PublishedURL:  row[14],
		Engagement:    row[15],
		Tags:          row[16],
		Rating:        row[17],
		Notes:         row[18],
	}
}

func decodeReel(row []string) domain.ReelRow {
	return domain.ReelRow{
		ID:           row[0],
		ArticleID:    row[1],
		Title:        row[2],
		Script:       row[3],
		CreationDate: row[4],
		Status:       row[5],
		VideoURL:     row[6],
		Notes:        row[7],
	}
}

func decodeSchedule(row []string) domain.ScheduleRow {
	return domain.ScheduleRow{
		ID:            row[0],
		ContentID:     row[1],
		Platform:      row[2],
		ScheduledDate: row[3],
		ScheduledTime: row[4],
		Timezone:      row[5],
		PostingStatus: row[6],
		Priority:      row[7],
		CampaignID:    row[8],
		Account:       row[9],
	}
}

func decodeLog(row []string) domain.LogRow {
	return domain.LogRow{
		ID:        row[0],
		ArticleID: row[1],
		ContentID: row[2],
		LogType:   row[3],
		Timestamp: row[4],
		Message:   row[5],
		Details:   row[6],
	}
}

// GetSchedulesByContentID returns every schedule row for one content id.
func (s *Store) GetSchedulesByContentID(ctx context.Context, contentID string) ([]domain.ScheduleRow, error) {
	rows, err := s.backend.readRows(ctx, scheduleTable)
	if err != nil {
		return nil, err
	}

	var schedules []domain.ScheduleRow
	for _, row := range rows {
		schedule := decodeSchedule(pad(row, scheduleTable))
		if schedule.ContentID == contentID {
			schedules = append(schedules, schedule)
		}
	}
	return schedules, nil
}
