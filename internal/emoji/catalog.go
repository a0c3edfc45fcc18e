// Package emoji provides the built-in emoji catalog with keyword search
// and an optional bridge to a native picker.
package emoji

// Emoji is one catalog entry.
type Emoji struct {
	Char     string
	Name     string
	Group    string
	Keywords []string
}

// Groups lists catalog groups in display order.
var Groups = []string{"Smileys", "People", "Nature", "Food", "Activities", "Travel", "Objects", "Symbols", "Flags"}

// Catalog is the built-in emoji table.
var Catalog = []Emoji{
	{"😀", "grinning face", "Smileys", []string{"happy", "smile"}},
	{"😂", "face with tears of joy", "Smileys", []string{"laugh", "lol"}},
	{"😊", "smiling face", "Smileys", []string{"blush", "happy"}},
	{"😍", "heart eyes", "Smileys", []string{"love", "crush"}},
	{"😎", "sunglasses", "Smileys", []string{"cool"}},
	{"🤔", "thinking face", "Smileys", []string{"hmm", "think", "idea"}},
	{"😴", "sleeping face", "Smileys", []string{"sleep", "tired", "zzz"}},
	{"😅", "grinning sweat", "Smileys", []string{"relief", "phew"}},
	{"🥳", "partying face", "Smileys", []string{"party", "celebrate", "birthday"}},
	{"😬", "grimacing face", "Smileys", []string{"awkward", "nervous"}},
	{"🤯", "exploding head", "Smileys", []string{"mind blown", "shock"}},
	{"😤", "steam from nose", "Smileys", []string{"frustrated", "determined"}},
	{"👋", "waving hand", "People", []string{"hello", "hi", "bye", "welcome"}},
	{"👍", "thumbs up", "People", []string{"ok", "yes", "approve", "like"}},
	{"👏", "clapping hands", "People", []string{"applause", "congrats"}},
	{"🙏", "folded hands", "People", []string{"please", "thanks", "pray"}},
	{"💪", "flexed biceps", "People", []string{"strong", "gym", "workout"}},
	{"🧠", "brain", "People", []string{"think", "learn", "smart"}},
	{"👀", "eyes", "People", []string{"look", "review", "watch"}},
	{"🧑‍💻", "technologist", "People", []string{"developer", "coding", "computer"}},
	{"🧘", "person in lotus position", "People", []string{"meditate", "yoga", "calm"}},
	{"🏃", "person running", "People", []string{"run", "exercise", "jog"}},
	{"👶", "baby", "People", []string{"child", "kid"}},
	{"👨‍👩‍👧", "family", "People", []string{"home", "parents", "kids"}},
	{"🤝", "handshake", "People", []string{"deal", "meeting", "agreement"}},
	{"🐶", "dog face", "Nature", []string{"dog", "pet", "puppy"}},
	{"🐱", "cat face", "Nature", []string{"cat", "pet", "kitten"}},
	{"🌱", "seedling", "Nature", []string{"plant", "garden", "grow"}},
	{"🌳", "deciduous tree", "Nature", []string{"tree", "park", "outdoors"}},
	{"🌸", "cherry blossom", "Nature", []string{"flower", "spring"}},
	{"🌞", "sun with face", "Nature", []string{"sun", "summer", "weather"}},
	{"🌧️", "cloud with rain", "Nature", []string{"rain", "weather"}},
	{"❄️", "snowflake", "Nature", []string{"snow", "winter", "cold"}},
	{"🔥", "fire", "Nature", []string{"hot", "urgent", "lit"}},
	{"🌊", "water wave", "Nature", []string{"sea", "ocean", "beach"}},
	{"🍎", "red apple", "Food", []string{"fruit", "healthy"}},
	{"🥑", "avocado", "Food", []string{"fruit", "healthy"}},
	{"🥕", "carrot", "Food", []string{"vegetable"}},
	{"🍞", "bread", "Food", []string{"bakery", "groceries"}},
	{"🧀", "cheese", "Food", []string{"groceries", "dairy"}},
	{"🥛", "glass of milk", "Food", []string{"milk", "dairy", "groceries"}},
	{"🍕", "pizza", "Food", []string{"dinner", "takeaway"}},
	{"🍝", "spaghetti", "Food", []string{"pasta", "dinner", "cook"}},
	{"🍰", "shortcake", "Food", []string{"cake", "dessert", "birthday"}},
	{"☕", "hot beverage", "Food", []string{"coffee", "tea", "break"}},
	{"🍷", "wine glass", "Food", []string{"wine", "drink"}},
	{"🛒", "shopping cart", "Food", []string{"shopping", "groceries", "buy"}},
	{"⚽", "soccer ball", "Activities", []string{"football", "sport"}},
	{"🏀", "basketball", "Activities", []string{"sport", "ball"}},
	{"🎾", "tennis", "Activities", []string{"sport", "racket"}},
	{"🚴", "person biking", "Activities", []string{"bike", "cycling"}},
	{"🎨", "artist palette", "Activities", []string{"art", "paint", "design", "colour", "color"}},
	{"🎸", "guitar", "Activities", []string{"music", "instrument"}},
	{"🎮", "video game", "Activities", []string{"game", "play"}},
	{"🎯", "direct hit", "Activities", []string{"goal", "target", "focus"}},
	{"🎉", "party popper", "Activities", []string{"party", "celebrate", "tada", "done"}},
	{"🎁", "wrapped gift", "Activities", []string{"present", "birthday", "gift"}},
	{"🏆", "trophy", "Activities", []string{"win", "award", "achievement"}},
	{"🤹", "person juggling", "Activities", []string{"juggle", "multitask", "skill"}},
	{"🏖️", "beach with umbrella", "Travel", []string{"vacation", "holiday", "beach"}},
	{"✈️", "airplane", "Travel", []string{"flight", "travel", "trip"}},
	{"🚗", "automobile", "Travel", []string{"car", "drive"}},
	{"🚆", "train", "Travel", []string{"rail", "commute"}},
	{"🏠", "house", "Travel", []string{"home"}},
	{"🏢", "office building", "Travel", []string{"work", "office"}},
	{"🏥", "hospital", "Travel", []string{"doctor", "health"}},
	{"🗺️", "world map", "Travel", []string{"map", "travel", "explore"}},
	{"⛰️", "mountain", "Travel", []string{"hike", "outdoors"}},
	{"🏕️", "camping", "Travel", []string{"camp", "tent", "outdoors"}},
	{"🚀", "rocket", "Travel", []string{"launch", "ship", "release", "fast"}},
	{"📱", "mobile phone", "Objects", []string{"phone", "call", "app"}},
	{"💻", "laptop", "Objects", []string{"computer", "work", "code"}},
	{"⌨️", "keyboard", "Objects", []string{"type", "computer"}},
	{"📷", "camera", "Objects", []string{"photo", "picture"}},
	{"📚", "books", "Objects", []string{"read", "study", "library", "learn"}},
	{"📖", "open book", "Objects", []string{"read", "chapter"}},
	{"📝", "memo", "Objects", []string{"note", "write", "todo"}},
	{"✏️", "pencil", "Objects", []string{"write", "edit", "draft"}},
	{"📎", "paperclip", "Objects", []string{"attach", "office"}},
	{"📅", "calendar", "Objects", []string{"date", "schedule", "plan"}},
	{"⏰", "alarm clock", "Objects", []string{"time", "wake", "reminder"}},
	{"✉️", "envelope", "Objects", []string{"email", "mail", "letter"}},
	{"📦", "package", "Objects", []string{"box", "delivery", "shipping"}},
	{"💡", "light bulb", "Objects", []string{"idea", "tip"}},
	{"🔧", "wrench", "Objects", []string{"fix", "tool", "repair"}},
	{"🔨", "hammer", "Objects", []string{"build", "tool", "diy"}},
	{"🧹", "broom", "Objects", []string{"clean", "chores", "sweep"}},
	{"🧺", "basket", "Objects", []string{"laundry", "picnic"}},
	{"💰", "money bag", "Objects", []string{"money", "finance", "budget"}},
	{"💳", "credit card", "Objects", []string{"pay", "bill", "bank"}},
	{"🧾", "receipt", "Objects", []string{"invoice", "expense", "tax"}},
	{"💊", "pill", "Objects", []string{"medicine", "health", "pharmacy"}},
	{"🔑", "key", "Objects", []string{"password", "lock", "access"}},
	{"📁", "file folder", "Objects", []string{"folder", "project", "files"}},
	{"📌", "pushpin", "Objects", []string{"pin", "important"}},
	{"🔔", "bell", "Objects", []string{"notification", "reminder"}},
	{"✅", "check mark button", "Symbols", []string{"done", "complete", "yes"}},
	{"❌", "cross mark", "Symbols", []string{"no", "cancel", "wrong"}},
	{"⚠️", "warning", "Symbols", []string{"caution", "alert"}},
	{"❗", "exclamation mark", "Symbols", []string{"important", "urgent"}},
	{"❓", "question mark", "Symbols", []string{"question", "unknown"}},
	{"⭐", "star", "Symbols", []string{"favourite", "favorite", "important"}},
	{"❤️", "red heart", "Symbols", []string{"love", "like"}},
	{"💯", "hundred points", "Symbols", []string{"perfect", "score"}},
	{"♻️", "recycling symbol", "Symbols", []string{"recycle", "environment"}},
	{"🔁", "repeat", "Symbols", []string{"recurring", "loop", "again"}},
	{"⏳", "hourglass", "Symbols", []string{"waiting", "time", "pending"}},
	{"🚫", "prohibited", "Symbols", []string{"blocked", "forbidden"}},
	{"🇮🇹", "flag italy", "Flags", []string{"italy", "italian"}},
	{"🇫🇷", "flag france", "Flags", []string{"france", "french"}},
	{"🇩🇪", "flag germany", "Flags", []string{"germany", "german"}},
	{"🇪🇸", "flag spain", "Flags", []string{"spain", "spanish"}},
	{"🇯🇵", "flag japan", "Flags", []string{"japan", "japanese"}},
	{"🇬🇧", "flag united kingdom", "Flags", []string{"uk", "britain", "english"}},
	{"🇺🇸", "flag united states", "Flags", []string{"usa", "america"}},
	{"🏁", "chequered flag", "Flags", []string{"finish", "race", "done"}},
}
