package extract

// bandNames is the canonical artist list the archive is known to hold.
// Matching is performed on normalized forms; the canonical spelling here is
// what lands in the catalog.
var bandNames = []string{
	"30 Seconds to Mars", "Aerosmith", "Alanis Morissette", "Alice In Chains", "Arctic Monkeys",
	"Army of Anyone", "Ash", "Audioslave", "Beastie Boys", "Beck",
	"Ben Harper & The Innocent Criminals", "Billy Corgan", "Black Crowes", "Blind Melon",
	"Blink 182", "Bloodhound Gang", "Blur", "Bon Jovi",
	"Bruce Springsteen & the E Street Band", "Bush", "The Cardigans", "The Cars", "Cat Stevens",
	"Chris Cornell", "Coldplay", "Counting Crows", "Creed", "Creedence Clearwater Revival",
	"Crowded House", "The Dandy Warhols", "Dave Navarro", "Deep Purple", "Deftones", "Dire Straits",
	"Editors", "Erykah Badu", "Everclear", "Evermore", "Faith No More", "The Feelers", "Filter",
	"Flight Of The Conchords", "Fly My Pretties", "Foo Fighters", "Franz Ferdinand", "The Fray",
	"Fu Manchu", "Fuel", "Fun Lovin' Criminals", "Green Day", "Grinspoon", "Guns N' Roses",
	"Hed PE", "Hole", "Incubus", "Jamiroquai", "Jane's Addiction", "Jay-Z", "Jeff Buckley",
	"Jessica Mauboy", "Jet", "John Butler Trio", "John Fogerty", "Kaiser Chiefs", "Kanye West",
	"Kelly Jones", "The Killers", "Kings Of Leon", "The Kinks", "Kiss", "Korn", "KT Tunstall",
	"Lady Gaga", "Ladyhawke", "Led Zeppelin", "Lenny Kravitz", "Limp Bizkit", "Live",
	"Manic Street Preachers", "Marcy Playground", "Marilyn Manson", "The Mars Volta",
	"Mercury Crowe", "Metallica", "Michael Jackson", "Millencolin", "Moby", "Motörhead", "Muse",
	"Nickelback", "Nirvana", "Oasis", "The Offspring", "Orgy", "Our Lady Peace", "Papa Roach",
	"Pearl Jam", "A Perfect Circle", "The Police", "Portishead", "Powderfinger",
	"Presidents of the United States of America", "Prodigy", "Queen", "Queens of the Stone Age",
	"Queensrÿche", "R.E.M.", "The Raconteurs", "Radiohead", "Rage Against the Machine",
	"Red Hot Chili Peppers", "Rob Zombie", "Rolling Stones", "Scott Weiland", "Sheryl Crow",
	"Shihad", "Sia", "Silverchair", "Smashing Pumpkins", "Snoop Dogg", "Soundgarden",
	"Spiritualized", "Staind", "Steppenwolf", "Stereophonics", "Stone Temple Pilots", "The Strokes",
	"Sum 41", "Supergrass", "Them Crooked Vultures", "Third Eye Blind", "Tool", "Train", "U2",
	"Velvet Revolver", "The Verve", "The Vines", "Weezer", "White Stripes", "Wolfmother", "Zwan",
	"ZZ Top",
}

// bandAliases remaps common abbreviations to canonical names.
var bandAliases = map[string]string{
	"RHCP":    "Red Hot Chili Peppers",
	"QOTSA":   "Queens of the Stone Age",
	"REM":     "R.E.M.",
	"STP":     "Stone Temple Pilots",
	"POTUSA":  "Presidents of the United States of America",
	"TPOTUSA": "Presidents of the United States of America",
	"GNR":     "Guns N' Roses",
}

var usStateAbbr = []string{
	"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "FL", "GA", "HI", "ID", "IL", "IN", "IA", "KS", "KY",
	"LA", "ME", "MD", "MA", "MI", "MN", "MS", "MO", "MT", "NE", "NV", "NH", "NJ", "NM", "NY", "NC", "ND",
	"OH", "OK", "OR", "PA", "RI", "SC", "SD", "TN", "TX", "UT", "VT", "VA", "WA", "WV", "WI", "WY", "DC",
}

// regionToCountry maps region abbreviations to countries. Later entries win
// collisions (WA, SA, NT), so Australian regions shadow the US and Canadian
// abbreviations; Australian shows dominate the archive.
var regionToCountry = func() map[string]string {
	m := make(map[string]string, 80)
	for _, state := range usStateAbbr {
		m[state] = "USA"
	}
	for _, province := range []string{"AB", "BC", "MB", "NB", "NL", "NS", "NT", "NU", "ON", "PE", "QC", "SK", "YT"} {
		m[province] = "Canada"
	}
	for _, state := range []string{"NSW", "VIC", "QLD", "SA", "WA", "TAS", "ACT", "NT"} {
		m[state] = "Australia"
	}
	for _, region := range []string{"ENG", "SCT", "WLS", "NIR"} {
		m[region] = "United Kingdom"
	}
	return m
}()

var countryNames = map[string]struct{}{
	"United States": {}, "USA": {}, "US": {}, "United Kingdom": {}, "UK": {}, "England": {},
	"Scotland": {}, "Wales": {},
	"Germany": {}, "France": {}, "Spain": {}, "Italy": {}, "Portugal": {}, "Netherlands": {},
	"Belgium": {}, "Switzerland": {}, "Austria": {},
	"Brazil": {}, "Argentina": {}, "Chile": {}, "Mexico": {}, "Canada": {}, "Australia": {},
	"New Zealand": {}, "Japan": {}, "South Korea": {},
	"Norway": {}, "Sweden": {}, "Denmark": {}, "Finland": {}, "Ireland": {}, "Poland": {},
	"Czech Republic": {}, "Hungary": {}, "Greece": {},
	"Iceland": {}, "Luxembourg": {},
}

func isCountry(token string) bool {
	_, ok := countryNames[token]
	return ok
}

func countryForRegion(token string) (string, bool) {
	country, ok := regionToCountry[token]
	return country, ok
}
