package mapping

import (
	"sort"

	sonic "github.com/bytedance/sonic"

	"github.com/VillePajala/matchops-sync/internal/domain/game"
	"github.com/VillePajala/matchops-sync/internal/domain/roster"
	"github.com/VillePajala/matchops-sync/internal/domain/season"
	"github.com/VillePajala/matchops-sync/internal/domain/settings"
	"github.com/VillePajala/matchops-sync/internal/validate"
)

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func nullInt(v int) *int {
	if v == 0 {
		return nil
	}
	return &v
}

func nullFloat(v float64) *float64 {
	if v == 0 {
		return nil
	}
	return &v
}

// ToPlayerRow flattens a master-roster player. An empty JerseyNumber or
// Notes becomes explicit null so an update can clear a previously-set value.
func ToPlayerRow(userID string, p roster.Player) PlayerRow {
	return PlayerRow{
		ID:                   p.ID,
		UserID:               userID,
		Name:                 p.Name,
		Nickname:             nullString(p.Nickname),
		JerseyNumber:         nullString(p.JerseyNumber.String()),
		Notes:                nullString(p.Notes),
		IsGoalie:             p.IsGoalie,
		ReceivedFairPlayCard: p.ReceivedFairPlayCard,
		Color:                nullString(p.Color),
	}
}

// ToSeasonRow flattens a season, normalizing the dual-format roster
// reference to default_roster_ids.
func ToSeasonRow(userID string, s season.Season) SeasonRow {
	return SeasonRow{
		ID:                    s.ID,
		UserID:                userID,
		Name:                  s.Name,
		Location:              nullString(s.Location),
		PeriodCount:           nullInt(s.PeriodCount),
		PeriodDurationMinutes: nullInt(s.PeriodDurationMinutes),
		StartDate:             nullString(s.StartDate),
		EndDate:               nullString(s.EndDate),
		GameDates:             append([]string(nil), s.GameDates...),
		Archived:              s.Archived,
		DefaultRosterIDs:      normalizeRoster(s.DefaultRoster, s.DefaultRosterID),
		Notes:                 nullString(s.Notes),
		Color:                 nullString(s.Color),
		Badge:                 nullString(s.Badge),
		AgeGroup:              nullString(s.AgeGroup),
	}
}

// ToTournamentRow flattens a tournament with the same roster discipline as
// ToSeasonRow.
func ToTournamentRow(userID string, t season.Tournament) TournamentRow {
	return TournamentRow{
		ID:                    t.ID,
		UserID:                userID,
		Name:                  t.Name,
		Location:              nullString(t.Location),
		PeriodCount:           nullInt(t.PeriodCount),
		PeriodDurationMinutes: nullInt(t.PeriodDurationMinutes),
		StartDate:             nullString(t.StartDate),
		EndDate:               nullString(t.EndDate),
		GameDates:             append([]string(nil), t.GameDates...),
		Archived:              t.Archived,
		DefaultRosterIDs:      normalizeRoster(t.DefaultRoster, t.DefaultRosterID),
		Notes:                 nullString(t.Notes),
		Color:                 nullString(t.Color),
		Badge:                 nullString(t.Badge),
		AgeGroup:              nullString(t.AgeGroup),
		Level:                 nullString(t.Level),
		SeasonID:              nullString(t.SeasonID),
	}
}

// ToGameRow flattens the Game State scalars and embeds the serialized full
// state as the game_data snapshot column.
func ToGameRow(userID string, st game.State) (GameRow, error) {
	snapshot, err := sonic.MarshalString(st)
	if err != nil {
		return GameRow{}, validate.WrapExternal("game.gameData", err)
	}

	var ballPos *string
	if st.TacticalBallPos != nil {
		encoded, err := sonic.MarshalString(st.TacticalBallPos)
		if err != nil {
			return GameRow{}, validate.WrapExternal("game.tacticalBallPosition", err)
		}
		ballPos = &encoded
	}

	isPlayed := st.IsPlayed
	return GameRow{
		ID:                    st.ID,
		UserID:                userID,
		TeamName:              st.TeamName,
		OpponentName:          st.OpponentName,
		GameDate:              nullString(st.GameDate),
		GameTime:              nullString(st.GameTime),
		Location:              nullString(st.Location),
		HomeScore:             st.HomeScore,
		AwayScore:             st.AwayScore,
		HomeOrAway:            sideToStored[st.HomeOrAway],
		NumberOfPeriods:       st.NumberOfPeriods,
		PeriodDurationMinutes: st.PeriodDurationMinutes,
		SubIntervalMinutes:    nullInt(st.SubIntervalMinutes),
		CurrentPeriod:         st.CurrentPeriod,
		Status:                StoredStatus(st.Status),
		IsPlayed:              &isPlayed,
		SeasonID:              nullString(st.SeasonID),
		TournamentID:          nullString(st.TournamentID),
		AgeGroup:              nullString(st.AgeGroup),
		TournamentLevel:       nullString(st.TournamentLevel),
		DemandFactor:          nullFloat(st.DemandFactor),
		Notes:                 nullString(st.Notes),
		ShowPlayerNames:       st.ShowPlayerNames,
		LastSubTimeSeconds:    nullInt(st.LastSubTimeSeconds),
		TacticalBallPos:       ballPos,
		GameData:              snapshot,
	}, nil
}

// ToGamePlayerRows merges playersOnField and availablePlayers into one row
// set keyed by player id. A player present in both collections gets a single
// row and the on-field entry wins; the relational schema holds one row per
// player per game with an is_on_field flag.
func ToGamePlayerRows(gameID string, st game.State) []GamePlayerRow {
	selected := make(map[string]struct{}, len(st.SelectedPlayerIDs))
	for _, id := range st.SelectedPlayerIDs {
		selected[id] = struct{}{}
	}

	rows := make([]GamePlayerRow, 0, len(st.PlayersOnField)+len(st.AvailablePlayers))
	seen := make(map[string]struct{}, len(st.PlayersOnField))

	for _, p := range st.PlayersOnField {
		if _, dup := seen[p.ID]; dup {
			continue
		}
		seen[p.ID] = struct{}{}
		_, isSelected := selected[p.ID]
		rows = append(rows, GamePlayerRow{
			GameID:     gameID,
			PlayerID:   p.ID,
			IsOnField:  true,
			IsSelected: isSelected,
			RelX:       copyFloat(p.RelX),
			RelY:       copyFloat(p.RelY),
			Color:      nullString(p.Color),
		})
	}

	for _, p := range st.AvailablePlayers {
		if _, dup := seen[p.ID]; dup {
			continue
		}
		seen[p.ID] = struct{}{}
		_, isSelected := selected[p.ID]
		rows = append(rows, GamePlayerRow{
			GameID:     gameID,
			PlayerID:   p.ID,
			IsOnField:  false,
			IsSelected: isSelected,
			Color:      nullString(p.Color),
		})
	}

	return rows
}

func copyFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}

// ToEventRows flattens the match log. Reference columns are populated per
// event type; a goal without a scorer is a hard validation failure, never a
// silently coerced row.
func ToEventRows(gameID string, events []game.Event) ([]GameEventRow, error) {
	rows := make([]GameEventRow, 0, len(events))
	for _, e := range events {
		if e.Type == game.EventGoal && e.ScorerID == "" {
			return nil, validate.Event(e)
		}
		stored, ok := eventTypeToStored[e.Type]
		if !ok {
			return nil, validate.Event(e)
		}

		row := GameEventRow{
			ID:          e.ID,
			GameID:      gameID,
			EventType:   stored,
			TimeSeconds: e.TimeSeconds,
		}
		switch e.Type {
		case game.EventGoal:
			row.ScorerID = nullString(e.ScorerID)
			row.AssisterID = nullString(e.AssisterID)
		case game.EventSubstitution, game.EventFairPlayCard:
			row.EntityID = nullString(e.EntityID)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// ToAssessmentRows flattens per-player assessments, sorted by player id for
// deterministic output. Empty-string notes become null.
func ToAssessmentRows(gameID string, assessments map[string]game.Assessment) []AssessmentRow {
	ids := make([]string, 0, len(assessments))
	for id := range assessments {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	rows := make([]AssessmentRow, 0, len(ids))
	for _, id := range ids {
		a := assessments[id]
		rows = append(rows, AssessmentRow{
			GameID:        gameID,
			PlayerID:      id,
			OverallRating: a.Overall,
			Intensity:     a.Sliders.Intensity,
			Courage:       a.Sliders.Courage,
			Duels:         a.Sliders.Duels,
			Technique:     a.Sliders.Technique,
			Creativity:    a.Sliders.Creativity,
			Decisions:     a.Sliders.Decisions,
			Awareness:     a.Sliders.Awareness,
			Teamwork:      a.Sliders.Teamwork,
			FairPlay:      a.Sliders.FairPlay,
			Impact:        a.Sliders.Impact,
			Notes:         nullString(a.Notes),
			MinutesPlayed: a.MinutesPlayed,
			CreatedBy:     a.CreatedBy,
			CreatedAt:     a.CreatedAt,
		})
	}
	return rows
}

// ToOpponentRows flattens the opponent chips.
func ToOpponentRows(gameID string, opponents []game.OpponentMarker) []OpponentRow {
	rows := make([]OpponentRow, 0, len(opponents))
	for _, o := range opponents {
		rows = append(rows, OpponentRow{
			ID:     o.ID,
			GameID: gameID,
			RelX:   o.RelX,
			RelY:   o.RelY,
		})
	}
	return rows
}

// ToDiscRows flattens the tactical discs.
func ToDiscRows(gameID string, discs []game.TacticalDisc) []TacticalDiscRow {
	rows := make([]TacticalDiscRow, 0, len(discs))
	for _, d := range discs {
		rows = append(rows, TacticalDiscRow{
			ID:       d.ID,
			GameID:   gameID,
			RelX:     d.RelX,
			RelY:     d.RelY,
			DiscType: discTypeToStored[d.Type],
		})
	}
	return rows
}

// ToDrawingRows wraps one drawing layer into its single-row JSON-array
// storage. An empty or absent stroke list yields an empty result, not an
// error: drawings are optional overlay data.
func ToDrawingRows(gameID string, strokes []game.Stroke, layer string) ([]DrawingRow, error) {
	if len(strokes) == 0 {
		return []DrawingRow{}, nil
	}
	encoded, err := sonic.MarshalString(strokes)
	if err != nil {
		return nil, validate.WrapExternal("drawing.data", err)
	}
	return []DrawingRow{{
		GameID: gameID,
		Layer:  layer,
		Data:   encoded,
	}}, nil
}

// ToIntervalRows flattens completed substitution intervals.
func ToIntervalRows(gameID string, intervals []game.CompletedInterval) []CompletedIntervalRow {
	rows := make([]CompletedIntervalRow, 0, len(intervals))
	for _, iv := range intervals {
		rows = append(rows, CompletedIntervalRow{
			GameID:          gameID,
			Period:          iv.Period,
			DurationSeconds: iv.DurationSeconds,
			TimestampMillis: iv.TimestampMillis,
		})
	}
	return rows
}

// ToSettingsRow flattens app settings. Missing fields default instead of
// failing: language to "en", backup interval to 24 hours, flags to false.
func ToSettingsRow(userID string, s settings.AppSettings) AppSettingsRow {
	language := s.Language
	if language == "" {
		language = "en"
	}
	interval := s.AutoBackupIntervalHours
	if interval <= 0 {
		interval = 24
	}
	return AppSettingsRow{
		UserID:                  userID,
		CurrentGameID:           nullString(s.CurrentGameID),
		LastHomeTeamName:        nullString(s.LastHomeTeamName),
		Language:                language,
		DefaultTeamName:         nullString(s.DefaultTeamName),
		AutoBackupEnabled:       s.AutoBackupEnabled,
		AutoBackupIntervalHours: interval,
		LastBackupTime:          nullString(s.LastBackupTime),
		BackupEmail:             nullString(s.BackupEmail),
		UseDemandCorrection:     s.UseDemandCorrection,
	}
}

// ToTimerStateRow flattens a live-timer snapshot.
func ToTimerStateRow(userID string, t settings.TimerState) TimerStateRow {
	return TimerStateRow{
		GameID:          t.GameID,
		UserID:          userID,
		ElapsedSeconds:  t.ElapsedSeconds,
		TimestampMillis: t.TimestampMillis,
	}
}

// ToBundle assembles the full per-game row bundle. The state must already
// carry its game id; child rows key off it.
func ToBundle(userID string, st game.State) (Bundle, error) {
	if st.ID == "" {
		return Bundle{}, validate.Errorf("game.id", st.ID, "game id is required before flattening")
	}

	gameRow, err := ToGameRow(userID, st)
	if err != nil {
		return Bundle{}, err
	}
	events, err := ToEventRows(st.ID, st.Events)
	if err != nil {
		return Bundle{}, err
	}
	fieldDrawings, err := ToDrawingRows(st.ID, st.Drawings, storedDrawingLayerField)
	if err != nil {
		return Bundle{}, err
	}
	tacticalDrawings, err := ToDrawingRows(st.ID, st.TacticalDrawings, storedDrawingLayerTactical)
	if err != nil {
		return Bundle{}, err
	}

	return Bundle{
		Game:        gameRow,
		Players:     ToGamePlayerRows(st.ID, st),
		Opponents:   ToOpponentRows(st.ID, st.Opponents),
		Events:      events,
		Assessments: ToAssessmentRows(st.ID, st.Assessments),
		Discs:       ToDiscRows(st.ID, st.TacticalDiscs),
		Drawings:    append(fieldDrawings, tacticalDrawings...),
		Intervals:   ToIntervalRows(st.ID, st.CompletedIntervals),
	}, nil
}
