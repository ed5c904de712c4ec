package common

import "time"

// TPS is the fixed simulation rate.
const TPS = 60

// FrameDuration is the time advanced by one tick.
const FrameDuration = time.Second / TPS

// Frames converts a duration to the nearest whole number of ticks.
func Frames(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	return int((d + FrameDuration/2) / FrameDuration)
}

// Art keys.
const (
	ImageBackground  = "background"
	ImagePlayerSheet = "player_sheet"
	ImageEnemy       = "enemy"
	ImagePresent     = "present"
	ImageProjectile  = "projectile"
	ImageBarFrame    = "progress_frame"
	ImageInstruction = "instructions"
	ImageBannerWon   = "gameover_win"
	ImageBannerLost  = "gameover_lost"
)

// Sound bank names.
const (
	SoundCollect  = "collect"
	SoundSmash    = "smash"
	SoundStolen   = "stolen"
	MusicGame     = "game_music"
	MusicWin      = "win_song"
	MusicWinAlt   = "win_song2"
	MusicGameLost = "gameover_lost"
)
