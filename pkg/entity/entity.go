package entity

type Difficulty string

const (
	DifficultyEasy   Difficulty = "EASY"
	DifficultyMedium Difficulty = "MEDIUM"
	DifficultyHard   Difficulty = "HARD"
)

// XP returns experience points granted for one completion of a habit with such difficulty
func (d Difficulty) XP() int {
	switch d {
	case DifficultyEasy:
		return 25
	case DifficultyMedium:
		return 50
	case DifficultyHard:
		return 100
	}
	return 0
}

func (d Difficulty) Valid() bool {
	return d.XP() > 0
}

type Frequency string

const (
	FrequencyDaily  Frequency = "DAILY"
	FrequencyWeekly Frequency = "WEEKLY"
)

func (f Frequency) Valid() bool {
	return f == FrequencyDaily || f == FrequencyWeekly
}

// Identity is what the auth provider knows about a user. Carried inside session tokens.
type Identity struct {
	ProviderID string
	Username   string
	Email      string
	AvatarURL  string
}

type User struct {
	ID             string  `json:"id"`
	ProviderID     string  `json:"githubId"`
	Username       string  `json:"username"`
	Email          string  `json:"email"`
	AvatarURL      string  `json:"avatarUrl"`
	TotalXP        int     `json:"totalXp"`
	Level          int     `json:"level"`
	CurrentStreak  int     `json:"currentStreak"`
	LongestStreak  int     `json:"longestStreak"`
	LastActiveDate *string `json:"lastActiveDate"`
}

// Habit is a catalog template
type Habit struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	Difficulty  Difficulty `json:"difficulty"`
	Frequency   Frequency  `json:"frequency"`
	XP          int        `json:"xp"`
}

// UserHabit is a habit accepted by a user together with its progress
type UserHabit struct {
	ID                string     `json:"id"`
	UserID            string     `json:"userId"`
	HabitID           string     `json:"habitId"`
	HabitName         string     `json:"habitName"`
	Difficulty        Difficulty `json:"difficulty"`
	Frequency         Frequency  `json:"frequency"`
	Active            bool       `json:"active"`
	CurrentStreak     int        `json:"currentStreak"`
	LongestStreak     int        `json:"longestStreak"`
	LastCompletedDate *string    `json:"lastCompletedDate"`
	TotalCompletions  int        `json:"totalCompletions"`
	TotalXPEarned     int        `json:"totalXpEarned"`
}

// HabitCompletion is an immutable ledger entry. CompletionDate is YYYY-MM-DD.
type HabitCompletion struct {
	ID             string     `json:"id"`
	UserID         string     `json:"userId"`
	UserHabitID    string     `json:"userHabitId"`
	HabitID        string     `json:"habitId"`
	HabitName      string     `json:"habitName"`
	Difficulty     Difficulty `json:"difficulty"`
	Frequency      Frequency  `json:"frequency"`
	CompletionDate string     `json:"completionDate"`
	XPEarned       int        `json:"xpEarned"`
}
