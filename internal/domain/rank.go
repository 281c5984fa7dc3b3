package domain

// Ранги сообщества по числу сообщений
const (
	RankImmortal      = "Immortal"
	RankElementalLord = "Elemental Lord"
	RankArchon        = "Archon of Light"
	RankDaoMaster     = "Dao Master"
	RankHeavenlyAdept = "Heavenly Adept"
	RankWanderer      = "Wanderer of Ether"
)

// RankOf возвращает ранг по числу сообщений. Пороги проверяются по убыванию,
// первый подошедший побеждает.
func RankOf(count int64) string {
	switch {
	case count >= 2400:
		return RankImmortal
	case count >= 1200:
		return RankElementalLord
	case count >= 600:
		return RankArchon
	case count >= 300:
		return RankDaoMaster
	case count >= 150:
		return RankHeavenlyAdept
	default:
		return RankWanderer
	}
}
