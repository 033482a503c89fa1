package postgres

// Wish history table layout used by COPY
var (
	wishHistoryTable   = []string{"wish_history"}
	wishHistoryColumns = []string{"player_id", "banner_id", "banner_type", "item_id", "rarity", "pulled_at"}
)

// Queries
const (
	queryGetGachaInfo = `SELECT info FROM player_gacha_info WHERE player_id = $1`

	queryUpsertGachaInfo = `
		INSERT INTO player_gacha_info (player_id, info, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (player_id) DO UPDATE SET info = EXCLUDED.info, updated_at = NOW()`

	queryGetHistory = `
		SELECT player_id, banner_id, banner_type, item_id, rarity, pulled_at
		FROM wish_history
		WHERE player_id = $1 AND ($2::text = '' OR banner_type = $2::text)
		ORDER BY id DESC
		LIMIT $3`
)
