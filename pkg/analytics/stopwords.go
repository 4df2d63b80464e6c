package analytics

import "strings"

// stopwordsByLang holds the built-in stopword sets, keyed by ISO-639-1 code.
// The lists cover the languages pkg/detector can report.
var stopwordsByLang = map[string]map[string]struct{}{}

func init() {
	for lang, words := range map[string]string{
		"en": englishStopwords,
		"es": spanishStopwords,
		"de": germanStopwords,
		"fr": frenchStopwords,
	} {
		set := make(map[string]struct{})
		for _, w := range strings.Fields(words) {
			set[w] = struct{}{}
		}
		stopwordsByLang[lang] = set
	}
}

// stopwordSet returns the built-in set for lang, falling back to English.
func stopwordSet(lang string) map[string]struct{} {
	if set, ok := stopwordsByLang[lang]; ok {
		return set
	}
	return stopwordsByLang["en"]
}

const englishStopwords = `
a about above across after afterwards again against all almost alone along
already also although always am among amongst amount an and another any
anyhow anyone anything anyway anywhere are aren't around as at
back be became because become becomes becoming been before beforehand behind
being below beside besides between beyond both but by
can can't cannot could couldn't
did didn't do does doesn't doing don't done down during
each either else elsewhere enough entirely especially etc even ever every
everyone everything everywhere
few for former formerly from further
had hadn't has hasn't have haven't having he he'd he'll he's hence her here
hereafter hereby herein here's hereupon hers herself him himself his how
however
i i'd i'll i'm i've if in indeed into is isn't it it's its itself
just keep
last latter latterly least less let let's like likely
made make many may maybe me meanwhile might mine more moreover most mostly
much must mustn't my myself
neither never nevertheless next no nobody none noone nor not nothing now
nowhere
of off often on once one only onto or other others otherwise our ours
ourselves out over own
part per perhaps please put
rather re same see seem seemed seeming seems several she she'd she'll she's
should shouldn't since so some somehow someone something sometime sometimes
somewhere still such
take than that that's the their theirs them themselves then thence there
thereafter thereby therefore therein there's thereupon these they they'd
they'll they're they've this those through throughout thru thus to together
too toward towards
under until up upon us use
very via
was wasn't we we'd we'll we're we've well were weren't what whatever what's
when whence whenever where whereafter whereas whereby wherein where's
whereupon wherever whether which while whither who who'd whoever who'll who's
whose why with within without won't would wouldn't
yet you you'd you'll you're you've your yours yourself yourselves
ain't it'll shan't that'll when's
click clickable clicked clicking button link menu
redirected redirect redirecting page pages website site home homepage
search searching searched loading loaded load loads
`

const spanishStopwords = `
a al algo algunas algunos ante antes como con contra cual cuando de del
desde donde durante e el ella ellas ellos en entre era erais eran eres es
esa esas ese eso esos esta estas este esto estos fue fueron ha habia han
hasta hay la las le les lo los mas me mi mis mucho muchos muy nada ni no
nos nosotros nuestra nuestro o os otra otros para pero poco por porque que
quien se ser si sin sobre son su sus también te tiene tienen todo todos tu
tus un una uno unos vosotros y ya yo
`

const germanStopwords = `
aber als am an auch auf aus bei bin bis bist da damit dann das dass dein
deine dem den der des dessen die dies diese dieser dieses doch dort du
durch ein eine einem einen einer eines er es euer eure für hatte hatten
hier hinter ich ihr ihre im in ist ja jede jedem jeden jeder jedes kann
kannst können könnt machen mein meine mit muss musst müssen müsst nach
nachdem nein nicht noch nun oder seid sein seine sich sie sind soll sollen
sollst sollt sonst über um und uns unser unsere unter vom von vor wann
warum was weiter weitere wenn wer werde werden werdet wie wieder wir wird
wirst wo woher wohin zu zum zur
`

const frenchStopwords = `
a afin ai ainsi après attendu au aujourd auquel aussi autre autres aux
auxquelles auxquels avait avant avec c car ce ceci cela celle celles celui
cependant certain certaine certaines certains ces cet cette ceux chez ci
comme comment d dans de debout dedans dehors delà depuis des désormais
desquelles desquels dessous dessus donc dont du duquel elle elles en entre
est et etc été être eu eux il ils j je jusqu jusque l la laquelle le lequel
les lesquelles lesquels leur leurs lorsque lui là ma mais me mes mien mienne
mon même n ne ni non nos notre nous on ont ou où par parmi pas pendant plus
pour pourquoi qu quand que quel quelle quelles quels qui quoi s sa sans se
ses sien sa son sont sous sur t ta te tes toi ton tous tout toute toutes tu
un une vos votre vous vu y à
`
