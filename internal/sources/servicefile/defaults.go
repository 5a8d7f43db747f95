package servicefile

// Defaults returns the service list used when no services file is configured.
func Defaults() *File {
	return &File{
		Services: []ServiceEntry{
			{Name: "jellyfin", Port: 8096, Emoji: "🎬", Domain: "jellyfin.lan"},
			{Name: "kiwix", Port: 8088, Emoji: "📚", Domain: "kiwix.lan"},
			{Name: "navidrome", Port: 8091, Emoji: "🎵", Domain: "navidrome.lan"},
			{Name: "translate", Port: 8081, Emoji: "🌐", Domain: "translate.lan"},
			{Name: "dumbot", Port: 1090, Emoji: "🤖", Domain: "dumbot.lan"},
			{Name: "drive", Port: 8000, Emoji: "💾", Domain: "drive.lan"},
			{Name: "clock", Port: 1224, Emoji: "⏰", Domain: "clock.lan"},
			{Name: "komga", Port: 1111, Emoji: "📖", Domain: "komga.lan"},
			{Name: "games", Port: 7815, Emoji: "🎮", Domain: "games.lan"},
		},
	}
}
