// Package belbin scores the Belbin team-role inventory: it validates grouped answers,
// aggregates them into team-role scores, classifies each score into a level and encodes
// the qualifying roles into a compact result string.
package belbin

import "fmt"

// Section is one block of the inventory. Its item scores must sum to SectionTotal.
type Section struct {
	Name  string   `json:"name"`
	Items []string `json:"items"`
}

// Questionnaire is the ordered, read-only list of sections.
type Questionnaire struct {
	sections []Section
}

// NewQuestionnaire copies sections so later mutation by the caller cannot leak in.
func NewQuestionnaire(sections []Section) Questionnaire {
	out := make([]Section, len(sections))
	for i, s := range sections {
		items := make([]string, len(s.Items))
		copy(items, s.Items)
		out[i] = Section{Name: s.Name, Items: items}
	}
	return Questionnaire{sections: out}
}

// Sections returns a copy of the sections in questionnaire order.
func (q Questionnaire) Sections() []Section {
	return NewQuestionnaire(q.sections).sections
}

// Len is the number of sections.
func (q Questionnaire) Len() int {
	return len(q.sections)
}

// Section returns the section at 1-based index i.
func (q Questionnaire) Section(i int) (Section, bool) {
	if i < 1 || i > len(q.sections) {
		return Section{}, false
	}
	s := q.sections[i-1]
	return Section{Name: s.Name, Items: append([]string(nil), s.Items...)}, true
}

func (q Questionnaire) itemCount(section int) int {
	if section < 1 || section > len(q.sections) {
		return 0
	}
	return len(q.sections[section-1].Items)
}

// Contains reports whether c addresses an existing item.
func (q Questionnaire) Contains(c Coordinate) bool {
	return c.Item >= 1 && c.Item <= q.itemCount(c.Section)
}

// Coordinates lists every answer slot, section by section.
func (q Questionnaire) Coordinates() []Coordinate {
	var out []Coordinate
	for si, s := range q.sections {
		for ii := range s.Items {
			out = append(out, Coordinate{Section: si + 1, Item: ii + 1})
		}
	}
	return out
}

// GroupFieldName is the form field that carries per-group errors.
func GroupFieldName(section int) string {
	return fmt.Sprintf("group_%d", section)
}

// FieldName is the flat form key of one answer slot.
func FieldName(c Coordinate) string {
	return fmt.Sprintf("group_%d_question_%d", c.Section, c.Item)
}

// DefaultQuestionnaire is the Polish edition of the inventory, 7 sections of 8 items.
func DefaultQuestionnaire() Questionnaire {
	return NewQuestionnaire(defaultSections)
}

var defaultSections = []Section{
	{
		Name: "Część I: Sądzę, że osobiście wnoszę do grupy...",
		Items: []string{
			"Wydaje mi się, że szybko dostrzegam i umiem wykorzystać nowe możliwości",
			"Mogę dobrze pracować z bardzo różnymi ludźmi",
			"\"Produkowanie\" pomysłów to moja naturalna zdolność",
			"Moja siła tkwi w tym, że potrafię z ludzi \"wyciągnąć\" to, co mają w sobie najlepszego, aby przyczynili się do osiągnięcia celów i zadań grupowych",
			"Moja główna umiejętność polega na doprowadzaniu spraw do końca i wiąże się z efektywnością",
			"Jestem w stanie przez jakiś czas zaakceptować niepopularność mojej osoby, jeśli prowadzi to do wartościowych wyników",
			"Zwykle wyczuwam, co jest realistyczne i prawdopodobne, jeśli chodzi o osiągniecie sukcesu",
			"Zwykle mogę zaproponować jakieś alternatywne wyjście bez uprzedzeń i niechęci",
		},
	},
	{
		Name: "Część II: Jeśli mam jakieś niedociągnięcia w pracy grupowej to dlatego, że...",
		Items: []string{
			"Nie mogę się uspokoić, dopóki narada nie jest uporządkowana, kontrolowana i ogólnie dobrze prowadzona",
			"Mam skłonność do bycia wspaniałomyślnym dla tych, których przekonujące pomysły nie zostały odpowiednio przemyślane",
			"Mam skłonność do gadulstwa, gdy grupa rozpracowuje nowe pomysły",
			"Mój chłodny ogląd spraw utrudnia mi przyłączenie się do gotowości i entuzjazmu kolegów",
			"Czasami jestem spostrzegany jako wywierający nadmierny nacisk i autorytatywny wpływ, jeśli coś musi zostać rzeczywiście zrobione",
			"Trudno mi kierować \"na pierwszej linii\", gdyż czuję się zbyt odpowiedzialny za atmosferę grupową",
			"Mam skłonność do rozmyślania o tym, co w danej chwili wpada mi do głowy, przez co tracę kontakt z tym, co się dzieje",
			"Koledzy widzą mnie jako niepotrzebnie przejmującego się szczegółami i możliwością, że sprawy mogą się źle ułożyć",
		},
	},
	{
		Name: "Część III: Gdy jestem wciągnięty razem z innymi w przygotowanie projektu...",
		Items: []string{
			"Mam skłonność do wywierania wpływu na ludzi, lecz bez wywierania na nich presji",
			"Moja czujność pozwala zapobiegać wielu pomyłkom i błędom",
			"Jestem gotów kłaść nacisk na działanie, aby upewnić się, że narada nie jest stratą czasu lub, że prowadzi do utracenia z widoku głównego celu",
			"Zwykle można na mnie polegać, że wymyślę coś oryginalnego",
			"Zawsze jestem gotów uczynić dobrą sugestię przedmiotem zainteresowania całej grupy",
			"Zawsze poszukuję ostatnich nowinek, nowych odkryć i wyników badań na określony temat",
			"Mam przekonanie, że moja umiejętność wydawania sądu może pomóc w podjęciu odpowiednich decyzji",
			"Moją specjalnością jest zorganizowanie najbardziej znaczącej części pracy",
		},
	},
	{
		Name: "Część IV: Moją charakterystyczną cechą w pracy grupowej jest...",
		Items: []string{
			"Rzeczywiście interesuję się bliższym poznaniem moich kolegów",
			"Nie mam oporów przed przeciwstawianiem się zdaniu większości",
			"Zwykle potrafię przyjąć taką linię argumentacji, aby obalić błędny punkt widzenia",
			"Sądzę, że mam szczególny talent do wprowadzania pomysłów w życie, gdy plan ma być zastosowany",
			"Mam skłonność do unikania tego, co oczywiste i do zaskakiwania czymś niespodziewanym",
			"Doprowadzam to, czego się podejmę do perfekcji",
			"Jestem gotów do nawiązywania i wykorzystywania kontaktów pozagrupowych, jeśli jest to potrzebne",
			"Nawet jeśli interesuje mnie wiele aspektów sprawy, nie mam problemów z podjęciem decyzji co do wyboru rozwiązania",
		},
	},
	{
		Name: "Część V: Czerpię satysfakcję z pracy, gdyż...",
		Items: []string{
			"Cieszy mnie analizowanie sytuacji i rozważanie możliwości wyboru",
			"Interesuje mnie znalezienie praktycznych rozwiązań problemów",
			"Lubię mieć przekonanie, że sprzyjam kształtowaniu dobrych kontaktów międzyludzkich w pracy",
			"Lubię mieć duży wpływ na decyzje",
			"Cieszę się z kontaktów z ludźmi, którzy mają coś nowego do zaoferowania",
			"Jestem w stanie doprowadzić do zgody w ważnych dla pracy sprawach",
			"Wczuwam się w moją część zadania, jeśli pragnę poświęcić zadaniu całą swoją uwagę",
			"Lubię znaleźć taki obszar, który pobudza moja wyobraźnię",
		},
	},
	{
		Name: "Część VI: Jeśli nagle otrzymuję trudne zadanie do wykonania w ograniczonym czasie i wobec nieznanych mi osób...",
		Items: []string{
			"Mam ochotę zaszyć się w kącie, aby wymyślić sposób na wyjście z impasu",
			"Byłbym gotów do współpracy z osobą, która wykazała najbardziej pozytywne nastawienie",
			"Znalazłbym sposób na zmniejszenie skali zadania prze ustalenie, co mogłyby zrobić poszczególne jednostki",
			"Moje naturalne wyczucie spraw pilnych pozwoli na postępowanie zgodnie z planem",
			"Z pewnością zachowam spokój i zdolność do trzeźwego osądu",
			"Mimo nacisków zachowam stałość celu",
			"Byłbym przygotowany do przejęcia konstruktywnego kierownictwa, jeśli stwierdziłbym, że grupa nie robi postępu",
			"Zainicjowałbym dyskusję w celu stymulowania nowych pomysłów, rozwiązań",
		},
	},
	{
		Name: "Część VII: W odniesieniu do problemów, za które jestem w grupie odpowiedzialny...",
		Items: []string{
			"Mam skłonność do ujawniania niezadowolenia wobec tych, którzy moim zdaniem przeszkadzają w osiąganiu postępów",
			"Inni mogą mnie krytykować za to, że jestem analityczny i niedostatecznie opieram się na intuicji",
			"Moje pragnienie, aby praca została starannie wykonana, może wstrzymywać pójście do przodu",
			"Mam skłonność do nudzenia się i oczekuję, że inni będą mnie stymulować i \"zapalać\"",
			"Trudno mi rozpocząć, jeśli cele nie są dla mnie jasne",
			"Czasami nie jestem tak efektywny, jak bym chciał, jeśli chodzi o wyjaśnienie złożonych problemów, jakie przede mną stoją",
			"Mam świadomość, że wymagam od innych rzeczy, których sam nie mogę zrobić",
			"Waham się, gdy należałoby przeforsować mój punkt widzenia, gdy mam do czynienia z jawną opozycją",
		},
	},
}
