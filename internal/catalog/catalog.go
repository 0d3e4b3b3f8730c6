package catalog

import "strings"

// Language is a supported interface language tag.
type Language string

// Supported languages.
const (
	// LanguagePersian is the Persian (Farsi) interface language.
	LanguagePersian Language = "fa"
	// LanguageEnglish is the English interface language.
	LanguageEnglish Language = "en"
)

// Key identifies a message template in the catalog.
type Key string

// Message keys.
const (
	KeyWelcome                 Key = "welcome"
	KeySetLanguagePrompt       Key = "set_language_prompt"
	KeyLanguageSelected        Key = "language_selected"
	KeyHelp                    Key = "help"
	KeyTrackInfo               Key = "track_info"
	KeyUnsupportedLink         Key = "unsupported_link"
	KeyError                   Key = "error"
	KeySimilarSongs            Key = "similar_songs"
	KeySimilarSongsPlaceholder Key = "similar_songs_placeholder"
	KeySimilarSongsButton      Key = "similar_songs_button"
	KeyMoreInfoButton          Key = "more_info_button"
	KeyDownloadPreviewButton   Key = "download_preview_button"
	KeyDownloadSongButton      Key = "download_song_button"
	KeyDownloadPreviewCaption  Key = "download_preview_caption"
	KeyDownloadSongCaption     Key = "download_song_caption"
	KeyDownloadError           Key = "download_error"
	KeySelectQuality           Key = "select_quality"
	KeyNoPreview               Key = "no_preview"
	KeyNoGenre                 Key = "no_genre"
	KeyInvalidButtonData       Key = "invalid_button_data"
)

// MessageNotFound is returned when a key is absent from every language.
const MessageNotFound = "Message not found"

// ParseLanguage converts a raw language tag to a supported Language.
func ParseLanguage(raw string) (Language, bool) {
	switch Language(raw) {
	case LanguagePersian:
		return LanguagePersian, true
	case LanguageEnglish:
		return LanguageEnglish, true
	default:
		return "", false
	}
}

// DisplayName returns the human-readable name of the language, in that language.
func (l Language) DisplayName() string {
	if l == LanguagePersian {
		return "فارسی"
	}

	return "English"
}

//nolint:gochecknoglobals,lll // The catalog is an immutable lookup table; template lines are kept intact for readability.
var messages = map[Language]map[Key]string{
	LanguagePersian: {
		KeyWelcome:                 "🎵 به @SpotyMateBot خوش اومدی! حالا می‌تونی از امکانات بات استفاده کنی. 🎧\nبرای شروع، یه لینک اسپاتیفای بفرست یا از دستور /help استفاده کن.",
		KeySetLanguagePrompt:       "لطفاً زبانت رو انتخاب کن:",
		KeyLanguageSelected:        "زبان {language} انتخاب شد! حالا می‌تونی از امکانات بات استفاده کنی. 🎧",
		KeyHelp:                    "🎵 @SpotyMateBot - دوست موسیقایی تو!\nدستورات:\n/start - شروع بات\n/setlanguage - تغییر زبان\n/help - راهنما\nلینک اسپاتیفای بفرست تا اطلاعاتش رو ببینیم!",
		KeyTrackInfo:               "🎵 آهنگ: {title}\n🎤 خواننده: {artist}\n🎼 سبک: {genre}\n⏱ مدت: {duration}\n📅 تاریخ انتشار: {release_date}",
		KeyUnsupportedLink:         "لینک ارسالی پشتیبانی نمی‌شه. فقط لینک آهنگ (track) قبول می‌شه!",
		KeyError:                   "خطایی پیش اومد. لطفاً دوباره تلاش کن.",
		KeySimilarSongs:            "🎧 آهنگ‌های مشابه:\n{songs}",
		KeySimilarSongsPlaceholder: "فعلاً پیشنهاد مشابهی برای این آهنگ در دسترس نیست.",
		KeySimilarSongsButton:      "🎧 آهنگ‌های مشابه",
		KeyMoreInfoButton:          "ℹ️ اطلاعات بیشتر",
		KeyDownloadPreviewButton:   "▶️ دانلود پیش‌نمایش",
		KeyDownloadSongButton:      "⬇️ دانلود آهنگ",
		KeyDownloadPreviewCaption:  "🎵 پیش‌نمایش آهنگ",
		KeyDownloadSongCaption:     "🎵 {title} - {artist}",
		KeyDownloadError:           "دانلود ناموفق بود. لطفاً بعداً دوباره تلاش کن.",
		KeySelectQuality:           "کیفیت دانلود رو انتخاب کن:",
		KeyNoPreview:               "پیش‌نمایشی برای این آهنگ موجود نیست.",
		KeyNoGenre:                 "سبک مشخص نشده",
		KeyInvalidButtonData:       "داده‌ی دکمه نامعتبره. لطفاً دوباره لینک رو بفرست.",
	},
	LanguageEnglish: {
		KeyWelcome:                 "🎵 Welcome to @SpotyMateBot! Now you can enjoy the bot's features. 🎧\nSend a Spotify link or use /help to get started.",
		KeySetLanguagePrompt:       "Please choose your language:",
		KeyLanguageSelected:        "Language set to {language}! Now you can enjoy the bot's features. 🎧",
		KeyHelp:                    "🎵 @SpotyMateBot - Your music buddy!\nCommands:\n/start - Start the bot\n/setlanguage - Change language\n/help - Show help\nSend a Spotify link to get its details!",
		KeyTrackInfo:               "🎵 Track: {title}\n🎤 Artist: {artist}\n🎼 Genre: {genre}\n⏱ Duration: {duration}\n📅 Released: {release_date}",
		KeyUnsupportedLink:         "This link is not supported. Only track links are accepted!",
		KeyError:                   "Something went wrong. Please try again.",
		KeySimilarSongs:            "🎧 Similar songs:\n{songs}",
		KeySimilarSongsPlaceholder: "No similar songs are available for this track right now.",
		KeySimilarSongsButton:      "🎧 Similar songs",
		KeyMoreInfoButton:          "ℹ️ More info",
		KeyDownloadPreviewButton:   "▶️ Download preview",
		KeyDownloadSongButton:      "⬇️ Download song",
		KeyDownloadPreviewCaption:  "🎵 Track preview",
		KeyDownloadSongCaption:     "🎵 {title} - {artist}",
		KeyDownloadError:           "Download failed. Please try again later.",
		KeySelectQuality:           "Choose the download quality:",
		KeyNoPreview:               "No preview is available for this track.",
		KeyNoGenre:                 "No genre available",
		KeyInvalidButtonData:       "Invalid button data. Please send the link again.",
	},
}

// ChooseLanguagePrompt is the bilingual prompt shown before any language is stored.
const ChooseLanguagePrompt = "🎵 Welcome to @SpotyMateBot! Please choose your language:\nبه @SpotyMateBot خوش اومدی! لطفاً زبانت رو انتخاب کن:"

// Catalog renders localized message templates.
type Catalog struct {
	// defaultLanguage is used when a requested language has no entry.
	defaultLanguage Language
}

// NewCatalog creates a catalog with the given fallback language.
func NewCatalog(defaultLanguage Language) *Catalog {
	if _, ok := messages[defaultLanguage]; !ok {
		defaultLanguage = LanguageEnglish
	}

	return &Catalog{defaultLanguage: defaultLanguage}
}

// DefaultLanguage returns the catalog's fallback language.
func (c *Catalog) DefaultLanguage() Language {
	return c.defaultLanguage
}

// Render returns the template for (language, key) with {name} placeholders
// replaced by the given substitutions. An unknown language falls back to the
// default language; an unknown key yields the MessageNotFound sentinel.
// Render never returns an error.
func (c *Catalog) Render(language Language, key Key, substitutions map[string]string) string {
	template, ok := messages[language][key]
	if !ok {
		template, ok = messages[c.defaultLanguage][key]
	}

	if !ok {
		return MessageNotFound
	}

	if len(substitutions) == 0 {
		return template
	}

	pairs := make([]string, 0, len(substitutions)*2)
	for name, value := range substitutions {
		pairs = append(pairs, "{"+name+"}", value)
	}

	return strings.NewReplacer(pairs...).Replace(template)
}
