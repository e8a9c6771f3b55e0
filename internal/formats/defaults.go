package formats

import "time"

// Format and subformat keys of the seed table. Operator overrides may
// reword labels and questions but these keys are stable identifiers.
const (
	KeyMeetAuthor      = "meet_author"
	KeyStoryWeek       = "story_week"
	KeyBehindBrouillon = "behind_brouillon"
	KeyOther           = "other"
)

// Question ids with special intake semantics for Behind the Brouillon:
// cover and book_title are only required when the contributor says the
// post talks about their book.
const (
	QuestionTalksAboutBook = "talks_about_book"
	QuestionCover          = "cover"
	QuestionBookTitle      = "book_title"
)

// Default returns the seed format table. It is the fallback whenever no
// operator-edited configuration has been saved.
func Default() *Table {
	return NewTable([]Format{
		{
			Key:      KeyMeetAuthor,
			Label:    "Meet the Author",
			Kind:     KindSimple,
			Days:     []time.Weekday{time.Monday},
			Consigne: "Répondez en 3 à 5 phrases aux questions suivantes.",
			Questions: []Question{
				{ID: "pfp", Label: "Image de vous ou qui vous représente", Type: TypeImage},
				{ID: "cover", Label: "Couverture de ton histoire", Type: TypeImage},
				{ID: "writing_since", Label: "Depuis quand écris-tu ?", Type: TypeText},
				{ID: "first_draft", Label: "À quoi ressemblait ton tout premier brouillon ?", Type: TypeTextarea},
				{ID: "favorite_moment", Label: "Ton moment préféré pour écrire ?", Type: TypeText},
				{ID: "love_hate", Label: "Ce que tu aimes le moins (-) et le plus (+) dans l'écriture ?", Type: TypeTextarea},
				{ID: "suffering_character", Label: "Un personnage que tu fais souffrir ?", Type: TypeText},
				{ID: "this_or_that", Label: "Jouons a un petit jeu: Slow burn ou fast burn ? Happy ou sad ending ? Cliffhanger ou chapitre safe? Explique brièvement ton choix.", Type: TypeTextarea},
				{ID: "fun_fact", Label: "Un fun fact sur toi ?", Type: TypeText},
			},
		},
		{
			Key:      KeyStoryWeek,
			Label:    "Story of the Week",
			Kind:     KindSimple,
			Days:     []time.Weekday{time.Wednesday},
			Consigne: "Répondez en 3 à 5 phrases aux questions suivantes.",
			Questions: []Question{
				{ID: "cover", Label: "Couverture de ton histoire", Type: TypeImage},
				{ID: "title", Label: "Titre de ton histoire", Type: TypeText},
				{ID: "author", Label: "Pseudo Wattpad", Type: TypeText},
				{ID: "summary", Label: "Résumé de ton histoire", Type: TypeTextarea},
				{ID: "tropes", Label: "Tropes (À lire si tu aimes…)", Type: TypeTextarea},
				{ID: "quotes", Label: "Citation / scène clé", Type: TypeTextarea},
				{ID: "vibe", Label: "Type de photos / vibe souhaitée (par ex. : groupe d'amis, boîte de nuit,..)", Type: TypeTextarea},
				{ID: "story_link", Label: "Lien vers l'histoire sur Wattpad", Type: TypeText},
				{ID: "pinterest", Label: "Lien Pinterest (optionnel — merci d'indiquer « / » si non applicable)", Type: TypeText},
				{ID: "socials", Label: "Autres réseaux sociaux (TikTok, Instagram, Wattpad, Fyctia)", Type: TypeText},
			},
		},
		{
			Key:      KeyBehindBrouillon,
			Label:    "Behind the Brouillon",
			Kind:     KindComposite,
			Days:     []time.Weekday{time.Saturday},
			Consigne: "Partage ton expérience d'auteur de manière créative et authentique.",
			CommonQuestions: []Question{
				{ID: "wattpad", Label: "Pseudo Wattpad", Type: TypeText},
				{ID: QuestionTalksAboutBook, Label: "Je parle de mon roman dans ce post", Type: TypeCheckbox},
				{ID: QuestionCover, Label: "Couverture de ton roman (si tu en parles)", Type: TypeImage},
				{ID: QuestionBookTitle, Label: "Titre de ton roman (si tu en parles)", Type: TypeText},
				{ID: "socials", Label: "Autres réseaux sociaux (TikTok, Instagram, Fyctia) — indique « / » si non applicable", Type: TypeText},
			},
			Subformats: map[string]SubformatConfig{
				"conseils": {
					Label:       "Conseils d'auteurs",
					Description: "Partage des conseils pratiques pour d'autres auteurs",
					Example:     "Exemple : Comment j'aborde les sujets sensibles comme l'inceste dans mon roman, conseils pour traiter ce thème avec respect",
					Questions: []Question{
						{ID: "advice_topic", Label: "Quel conseil veux-tu partager ?", Type: TypeText, Placeholder: "Ex: Comment créer des personnages crédibles, Gérer le syndrome de la page blanche..."},
						{ID: "advice_content", Label: "Développe tes conseils (ton expérience, ce qui a marché pour toi)", Type: TypeTextarea, Placeholder: "Partage ton processus, tes astuces, ce que tu as appris..."},
						{ID: "advice_target", Label: "À qui s'adresse ce conseil ? (débutants, auteurs confirmés, tous...)", Type: TypeText, Placeholder: "Ex: Tous les auteurs, Débutants, Auteurs de romance..."},
					},
				},
				"confessions": {
					Label:       "Confessions d'auteurs",
					Description: "Un format personnel et honnête sur tes doutes",
					Example:     "Exemple : J'avoue avoir peur de mes statistiques, le syndrome de l'imposteur me ronge, je doute de mon écriture chaque jour",
					Questions: []Question{
						{ID: "confession_topic", Label: "De quoi veux-tu parler ?", Type: TypeText, Placeholder: "Ex: Ma peur des statistiques, Le syndrome de l'imposteur, Mes doutes..."},
						{ID: "confession_content", Label: "Partage ton expérience (sois authentique, on est tous passés par là)", Type: TypeTextarea, Placeholder: "Raconte ce que tu ressens, tes difficultés, comment tu gères..."},
						{ID: "confession_overcome", Label: "Comment tu gères/surmontes cette difficulté ? (ou pas, c'est ok aussi)", Type: TypeTextarea, Placeholder: "Partage tes stratégies, ou avoue que c'est toujours difficile..."},
					},
				},
				"mythes": {
					Label:       "Mythes vs réalité littéraire",
					Description: "Démonte les idées reçues sur l'écriture",
					Example:     "Exemple : La réalité d'être publié vs les idées reçues, ce que personne ne te dit sur l'édition",
					Questions: []Question{
						{ID: "myth_topic", Label: "Quel mythe veux-tu déconstruire ?", Type: TypeText, Placeholder: "Ex: 'Il faut écrire tous les jours', 'La publication = succès garanti'..."},
						{ID: "myth_belief", Label: "Qu'est-ce qu'on croit généralement ? (le mythe)", Type: TypeTextarea, Placeholder: "Explique l'idée reçue répandue..."},
						{ID: "myth_reality", Label: "Quelle est la réalité selon ton expérience ?", Type: TypeTextarea, Placeholder: "Partage ce qui se passe vraiment, ta vérité d'auteur..."},
					},
				},
				"sensible": {
					Label:       "Sujet sensible",
					Description: "Aborde un thème délicat avec bienveillance",
					Example:     "Exemple : Comment j'ai traité le thème du deuil dans mon histoire, l'importance de la recherche documentaire",
					Questions: []Question{
						{ID: "sensitive_topic", Label: "Quel sujet sensible abordes-tu ?", Type: TypeText, Placeholder: "Ex: Le deuil, Les troubles alimentaires, L'abus, La santé mentale..."},
						{ID: "sensitive_approach", Label: "Comment tu as abordé ce thème dans ton écriture ?", Type: TypeTextarea, Placeholder: "Ton processus de recherche, tes précautions, ton approche respectueuse..."},
						{ID: "sensitive_advice", Label: "Quels conseils donnerais-tu à d'autres auteurs sur ce sujet ?", Type: TypeTextarea, Placeholder: "Comment traiter ce thème avec respect et authenticité..."},
					},
				},
				"other": {
					Label:       "Autre format",
					Description: "Contacte-nous pour proposer un format différent",
					Example:     "Propose ton propre angle créatif pour parler de ton expérience d'auteur",
					Questions: []Question{
						{ID: "other_topic", Label: "Sujet de ton post", Type: TypeText, Placeholder: "De quoi veux-tu parler ?"},
						{ID: "other_content", Label: "Développe ton contenu", Type: TypeTextarea, Placeholder: "Partage ton expérience, tes réflexions..."},
					},
				},
			},
		},
		{
			Key:      KeyOther,
			Label:    "Autre format",
			Kind:     KindSimple,
			Days:     []time.Weekday{time.Sunday, time.Tuesday, time.Thursday, time.Friday},
			Consigne: "Décris ton format en quelques phrases.",
			Questions: []Question{
				{ID: "description", Label: "Décris ton format", Type: TypeTextarea},
			},
		},
	})
}
