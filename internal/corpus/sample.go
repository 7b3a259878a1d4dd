package corpus

// sampleTexts is the built-in demo corpus: twenty French sentences on
// computing topics.
var sampleTexts = []string{
	"L'intelligence artificielle transforme notre façon de travailler et de vivre.",
	"Les réseaux de neurones profonds permettent de résoudre des problèmes complexes.",
	"Le machine learning utilise des algorithmes pour apprendre à partir de données.",
	"La recherche d'information est un domaine important de l'informatique.",
	"Les moteurs de recherche indexent des millions de pages web quotidiennement.",
	"L'indexation inversée permet de retrouver rapidement les documents pertinents.",
	"Le traitement du langage naturel analyse et comprend le texte humain.",
	"Les algorithmes de compression réduisent la taille des données stockées.",
	"La parallélisation accélère le traitement de grandes quantités d'informations.",
	"Elasticsearch est un moteur de recherche distribué et scalable.",
	"Les bases de données relationnelles stockent les données de manière structurée.",
	"Le cloud computing permet d'accéder aux ressources informatiques à distance.",
	"La cybersécurité protège les systèmes contre les menaces numériques.",
	"Les blockchains garantissent la transparence et la sécurité des transactions.",
	"L'informatique quantique promet de révolutionner le calcul informatique.",
	"Les systèmes distribués répartissent le traitement sur plusieurs machines.",
	"Le big data analyse de vastes ensembles de données pour extraire des insights.",
	"Les APIs permettent la communication entre différents systèmes logiciels.",
	"Le développement agile favorise l'itération rapide et la collaboration.",
	"Les tests automatisés assurent la qualité du code logiciel.",
}
