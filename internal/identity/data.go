package identity

import "github.com/zarlcorp/zfake/internal/locale"

// corpus is the fact table for one locale.
type corpus struct {
	maleFirst   []string
	femaleFirst []string
	maleLast    []string
	// femaleLast is nil when surnames do not change with gender
	femaleLast     []string
	cities         []string
	streets        []string
	streetSuffixes []string
	buildingMasks  []string
}

var corpora = map[locale.Region]corpus{
	locale.US: {
		maleFirst: []string{
			"James", "Robert", "John", "Michael", "David", "William", "Richard", "Joseph",
			"Thomas", "Charles", "Christopher", "Daniel", "Matthew", "Anthony", "Mark", "Donald",
			"Steven", "Paul", "Andrew", "Joshua", "Kenneth", "Kevin", "Brian", "George",
			"Timothy", "Ronald", "Edward", "Jason", "Jeffrey", "Ryan", "Jacob", "Gary",
		},
		femaleFirst: []string{
			"Mary", "Patricia", "Jennifer", "Linda", "Elizabeth", "Barbara", "Susan", "Jessica",
			"Sarah", "Karen", "Lisa", "Nancy", "Betty", "Margaret", "Sandra", "Ashley",
			"Kimberly", "Emily", "Donna", "Michelle", "Carol", "Amanda", "Dorothy", "Melissa",
			"Deborah", "Stephanie", "Rebecca", "Sharon", "Laura", "Cynthia", "Kathleen", "Amy",
		},
		maleLast: []string{
			"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis",
			"Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez", "Wilson", "Anderson", "Thomas",
			"Taylor", "Moore", "Jackson", "Martin", "Lee", "Perez", "Thompson", "White",
			"Harris", "Sanchez", "Clark", "Ramirez", "Lewis", "Robinson", "Walker", "Young",
		},
		cities: []string{
			"New York", "Los Angeles", "Chicago", "Houston", "Phoenix", "Philadelphia",
			"San Antonio", "San Diego", "Dallas", "San Jose", "Austin", "Jacksonville",
			"Columbus", "Indianapolis", "Charlotte", "Seattle", "Denver", "Nashville",
			"Boston", "Portland", "Memphis", "Louisville", "Baltimore", "Milwaukee",
		},
		streets: []string{
			"Main", "Oak", "Maple", "Cedar", "Elm", "Pine", "Walnut", "Lake",
			"Hill", "Park", "Washington", "Lincoln", "Jackson", "Franklin", "Highland", "Sunset",
		},
		streetSuffixes: []string{"St", "Ave", "Blvd", "Dr", "Ln", "Rd", "Way", "Ct"},
		buildingMasks:  []string{"#####", "####", "###"},
	},
	locale.Russia: {
		maleFirst: []string{
			"Александр", "Алексей", "Андрей", "Антон", "Артём", "Борис", "Вадим", "Валентин",
			"Василий", "Виктор", "Владимир", "Герман", "Глеб", "Григорий", "Денис", "Дмитрий",
			"Евгений", "Егор", "Иван", "Игорь", "Илья", "Кирилл", "Константин", "Максим",
			"Михаил", "Никита", "Николай", "Олег", "Павел", "Роман", "Сергей", "Юрий",
		},
		femaleFirst: []string{
			"Александра", "Алина", "Алла", "Анастасия", "Анна", "Валентина", "Валерия", "Вера",
			"Виктория", "Галина", "Дарья", "Евгения", "Екатерина", "Елена", "Жанна", "Зоя",
			"Ирина", "Карина", "Кира", "Ксения", "Лариса", "Любовь", "Людмила", "Маргарита",
			"Марина", "Мария", "Надежда", "Наталья", "Нина", "Ольга", "Светлана", "Татьяна",
		},
		maleLast: []string{
			"Иванов", "Смирнов", "Кузнецов", "Попов", "Васильев", "Петров", "Соколов", "Михайлов",
			"Новиков", "Фёдоров", "Морозов", "Волков", "Алексеев", "Лебедев", "Семёнов", "Егоров",
			"Павлов", "Козлов", "Степанов", "Николаев", "Орлов", "Андреев", "Макаров", "Никитин",
		},
		femaleLast: []string{
			"Иванова", "Смирнова", "Кузнецова", "Попова", "Васильева", "Петрова", "Соколова", "Михайлова",
			"Новикова", "Фёдорова", "Морозова", "Волкова", "Алексеева", "Лебедева", "Семёнова", "Егорова",
			"Павлова", "Козлова", "Степанова", "Николаева", "Орлова", "Андреева", "Макарова", "Никитина",
		},
		cities: []string{
			"Москва", "Санкт-Петербург", "Новосибирск", "Екатеринбург", "Казань", "Нижний Новгород",
			"Челябинск", "Самара", "Омск", "Ростов-на-Дону", "Уфа", "Красноярск",
			"Воронеж", "Пермь", "Волгоград", "Краснодар", "Саратов", "Тюмень",
		},
		streets: []string{
			"Ленина", "Советская", "Мира", "Молодёжная", "Центральная", "Школьная",
			"Садовая", "Лесная", "Набережная", "Гагарина", "Пушкина", "Кирова",
			"Октябрьская", "Зелёная", "Новая", "Строителей",
		},
		streetSuffixes: []string{"ул.", "пер.", "пр.", "бул."},
		buildingMasks:  []string{"#", "##", "###"},
	},
	locale.Germany: {
		maleFirst: []string{
			"Lukas", "Leon", "Finn", "Jonas", "Paul", "Elias", "Felix", "Maximilian",
			"Noah", "Luis", "Ben", "Henry", "Moritz", "Jakob", "Tim", "Niklas",
			"Jan", "Tobias", "Stefan", "Andreas", "Thomas", "Michael", "Wolfgang", "Jürgen",
		},
		femaleFirst: []string{
			"Mia", "Emma", "Hannah", "Sophia", "Lea", "Lena", "Marie", "Emilia",
			"Anna", "Lina", "Clara", "Johanna", "Laura", "Lara", "Leonie", "Julia",
			"Katharina", "Sabine", "Petra", "Ursula", "Monika", "Claudia", "Ingrid", "Renate",
		},
		maleLast: []string{
			"Müller", "Schmidt", "Schneider", "Fischer", "Weber", "Meyer", "Wagner", "Becker",
			"Schulz", "Hoffmann", "Schäfer", "Koch", "Bauer", "Richter", "Klein", "Wolf",
			"Schröder", "Neumann", "Schwarz", "Zimmermann", "Braun", "Krüger", "Hofmann", "Hartmann",
		},
		cities: []string{
			"Berlin", "Hamburg", "München", "Köln", "Frankfurt am Main", "Stuttgart",
			"Düsseldorf", "Leipzig", "Dortmund", "Essen", "Bremen", "Dresden",
			"Hannover", "Nürnberg", "Duisburg", "Bochum", "Wuppertal", "Bielefeld",
		},
		streets: []string{
			"Haupt", "Schul", "Garten", "Bahnhof", "Dorf", "Berg",
			"Linden", "Kirch", "Wald", "Ring", "Birken", "Wiesen",
			"Feld", "Mühlen", "Rosen", "Eichen",
		},
		streetSuffixes: []string{"straße", "weg", "allee", "gasse", "platz"},
		buildingMasks:  []string{"###", "##", "#", "##a", "##b", "##c"},
	},
}

// corpusFor returns the corpus for r, falling back to US.
func corpusFor(r locale.Region) corpus {
	if c, ok := corpora[r]; ok {
		return c
	}
	return corpora[locale.US]
}
