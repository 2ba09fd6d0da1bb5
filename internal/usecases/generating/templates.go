package generating

import (
	"fmt"

	"github.com/vfg2006/business-copilot-api/internal/domain"
)

// toneTemplate reúne todas as frases que variam conforme o tom de comunicação
type toneTemplate struct {
	opening         string
	positiveReview  string // %s = nome do negócio
	negativeReview  string
	promoPrefix     string
	promoSuffix     string
	reportGreeting  string // %s = nome do negócio
	campaignIntro   string
	storyCallToAct  string
	bannerHeadline  string
	facebookSignOff string
}

// sectorTemplate reúne os textos fixos de cada setor
type sectorTemplate struct {
	titleFormat    string // %s = estação
	body           string
	visual         string
	campaignVisual string
}

var (
	professionalTone = toneTemplate{
		opening:         "Nous sommes ravis de",
		positiveReview:  "Nous vous remercions sincèrement pour votre avis positif. Votre satisfaction est notre priorité et nous sommes ravis que vous ayez apprécié votre expérience chez %s.",
		negativeReview:  "Nous vous remercions d'avoir pris le temps de partager votre expérience. Nous sommes désolés que celle-ci n'ait pas été à la hauteur de vos attentes. Nous prenons note de vos remarques pour améliorer nos services.",
		promoPrefix:     "Profitez de notre offre exceptionnelle :",
		promoSuffix:     "Offre valable pour une durée limitée.",
		reportGreeting:  "Voici le bilan mensuel de %s.",
		campaignIntro:   "Nous avons le plaisir de vous annoncer :",
		storyCallToAct:  "Plus d'informations en message privé.",
		bannerHeadline:  "Nouveauté",
		facebookSignOff: "N'hésitez pas à partager cette information autour de vous.",
	}

	friendlyTone = toneTemplate{
		opening:         "Hello ! On est super contents de",
		positiveReview:  "Merci beaucoup pour ce super retour ! 😊 Ça nous fait vraiment plaisir de savoir que vous avez passé un bon moment chez %s. À très bientôt !",
		negativeReview:  "Merci d'avoir partagé votre avis. On est vraiment désolés que votre expérience n'ait pas été top. On prend note et on va faire notre maximum pour s'améliorer !",
		promoPrefix:     "Bonne nouvelle pour vous ! 😊",
		promoSuffix:     "On vous attend avec plaisir !",
		reportGreeting:  "Voici votre bilan du mois pour %s ! 😊",
		campaignIntro:   "Hello ! On a une super nouvelle à vous partager :",
		storyCallToAct:  "Écrivez-nous pour en savoir plus ! 💬",
		bannerHeadline:  "Du nouveau !",
		facebookSignOff: "Partagez avec vos amis ! 😊",
	}

	dynamicTone = toneTemplate{
		opening:         "🎉 Grande nouvelle !",
		positiveReview:  "WOW ! 🌟 Merci pour ce retour incroyable ! L'équipe %s est aux anges ! On a hâte de vous revoir !",
		negativeReview:  "Oups ! 😔 On est vraiment désolés pour cette expérience. Merci de nous avoir fait part de vos remarques, on va tout faire pour que ça n'arrive plus !",
		promoPrefix:     "🔥 PROMO FLASH !",
		promoSuffix:     "Foncez, c'est maintenant ou jamais ! 🚀",
		reportGreeting:  "🚀 Bilan du mois pour %s !",
		campaignIntro:   "🎉 Grande nouvelle !",
		storyCallToAct:  "Swipe up pour tout savoir ! 👆",
		bannerHeadline:  "🎉 C'est nouveau !",
		facebookSignOff: "Taguez vos amis pour leur faire découvrir ! 🚀",
	}
)

var (
	restaurantSector = sectorTemplate{
		titleFormat:    "Menu spécial %s",
		body:           "vous présenter notre nouveau menu de saison. Des produits frais et locaux pour ravir vos papilles !",
		visual:         "Photo d'un plat coloré de saison",
		campaignVisual: "Photo de l'équipe en cuisine",
	}

	boutiqueSector = sectorTemplate{
		titleFormat:    "Collection %s disponible",
		body:           "vous annoncer l'arrivée de notre nouvelle collection. Venez découvrir nos dernières nouveautés en magasin !",
		visual:         "Vitrine avec les nouveaux produits",
		campaignVisual: "Mise en scène des produits en boutique",
	}

	serviceSector = sectorTemplate{
		titleFormat:    "Offre spéciale %s",
		body:           "vous proposer une offre exceptionnelle ce mois-ci. Profitez de -20% sur nos prestations !",
		visual:         "Image promotionnelle avec le pourcentage de réduction",
		campaignVisual: "Photo de l'équipe au travail",
	}
)

const promotionVisual = "Affiche avec la réduction bien visible et les couleurs de la marque"

// toneTemplateFor resolve o tom; valores desconhecidos usam o tom profissional
func toneTemplateFor(tone domain.Tone) toneTemplate {
	switch tone.Normalize() {
	case domain.ToneFriendly:
		return friendlyTone
	case domain.ToneDynamic:
		return dynamicTone
	default:
		return professionalTone
	}
}

// sectorTemplateFor resolve o setor; valores desconhecidos usam o setor de serviços
func sectorTemplateFor(sector domain.Sector) sectorTemplate {
	switch sector.Normalize() {
	case domain.SectorRestaurant:
		return restaurantSector
	case domain.SectorBoutique:
		return boutiqueSector
	default:
		return serviceSector
	}
}

func seasonLabel(season domain.Season) string {
	switch season {
	case domain.SeasonSummer:
		return "été"
	case domain.SeasonAutumn:
		return "automne"
	case domain.SeasonWinter:
		return "hiver"
	default:
		return "printemps"
	}
}

func (t sectorTemplate) title(season domain.Season) string {
	return fmt.Sprintf(t.titleFormat, seasonLabel(season))
}

// Textos do relatório mensal
const (
	performanceExcellent = "excellente"
	performanceGood      = "bonne"
	performanceLow       = "à améliorer"

	cadenceVeryActive   = "très actif"
	cadenceRegular      = "régulier"
	cadenceInsufficient = "insuffisant"

	RecommendationPostMore      = "Augmentez votre fréquence de publication : visez au moins 1 post par semaine."
	RecommendationAnswerReviews = "Répondez à tous vos avis clients pour montrer votre engagement."
	RecommendationAskReviews    = "Encouragez vos clients satisfaits à laisser un avis pour améliorer votre note moyenne."
	RecommendationBoostVisits   = "Lancez une promotion pour augmenter votre visibilité."
	RecommendationKeepItUp      = "Continuez comme ça ! Vos performances sont excellentes."
)

// newsletterContent: os dois %s recebem o nome do negócio
const newsletterContent = `Bonjour,

Ce mois-ci chez %s, nous avons le plaisir de partager avec vous nos dernières actualités.

**Nos horaires**
Nous sommes ouverts du lundi au samedi, venez nous rendre visite !

**Événement du mois**
Ne manquez pas notre événement spécial ce mois-ci. Plus d'informations en magasin.

**Offre exclusive**
En tant que client fidèle, bénéficiez de 10%% de réduction sur votre prochain achat.

À très bientôt !
L'équipe %s`
