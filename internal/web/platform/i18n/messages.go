package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// copySet holds the localized copy for one language.
var copySet = map[language.Tag]map[string]string{
	language.English: {
		"error.auth.required":       "Sign in to continue.",
		"error.request.forbidden":   "You are not allowed to act on this request.",
		"error.request.not_found":   "This request no longer exists.",
		"error.request.conflict":    "This request changed before your action was applied.",
		"error.request.invalid":     "The request could not be understood.",
		"error.request.busy":        "An action on this request is still in progress.",
		"error.backend.unavailable": "The marketplace is unavailable. Try again shortly.",

		"flash.request.accepted":        "Request accepted.",
		"flash.request.rejected":        "Request rejected.",
		"flash.request.canceled":        "Request canceled.",
		"flash.request.transit_started": "Delivery marked as in transit.",
		"flash.request.delivered":       "Delivery marked as delivered.",
		"flash.request.removed":         "The request was already gone and has been removed.",
		"flash.favorite.saved":          "Listing saved to favorites.",
		"flash.favorite.removed":        "Listing removed from favorites.",

		"action.accept":            "Accept",
		"action.reject":            "Reject",
		"action.cancel":            "Cancel",
		"action.start_transit":     "Start transit",
		"action.complete_delivery": "Mark delivered",
		"action.confirm_hint":      "Press again to confirm",
		"action.remove_favorite":   "Remove",

		"status.pending":    "Pending",
		"status.accepted":   "Accepted",
		"status.rejected":   "Rejected",
		"status.canceled":   "Canceled",
		"status.in_transit": "In transit",
		"status.delivered":  "Delivered",

		"page.produce.title":   "Produce purchases",
		"page.delivery.title":  "Deliveries",
		"page.equipment.title": "Equipment rentals",
		"page.land.title":      "Land leases",
		"page.favorites.title": "Favorites",
		"tab.requests.mine":     "Sent",
		"tab.requests.received": "Received",
		"list.empty":            "Nothing here yet.",
	},
	language.BrazilianPortuguese: {
		"error.auth.required":       "Entre para continuar.",
		"error.request.forbidden":   "Você não pode agir sobre esta solicitação.",
		"error.request.not_found":   "Esta solicitação não existe mais.",
		"error.request.conflict":    "Esta solicitação mudou antes da sua ação ser aplicada.",
		"error.request.invalid":     "A solicitação não pôde ser entendida.",
		"error.request.busy":        "Uma ação nesta solicitação ainda está em andamento.",
		"error.backend.unavailable": "O marketplace está indisponível. Tente novamente em breve.",

		"flash.request.accepted":        "Solicitação aceita.",
		"flash.request.rejected":        "Solicitação rejeitada.",
		"flash.request.canceled":        "Solicitação cancelada.",
		"flash.request.transit_started": "Entrega marcada como em trânsito.",
		"flash.request.delivered":       "Entrega marcada como entregue.",
		"flash.request.removed":         "A solicitação já não existia e foi removida.",
		"flash.favorite.saved":          "Anúncio salvo nos favoritos.",
		"flash.favorite.removed":        "Anúncio removido dos favoritos.",

		"action.accept":            "Aceitar",
		"action.reject":            "Rejeitar",
		"action.cancel":            "Cancelar",
		"action.start_transit":     "Iniciar trânsito",
		"action.complete_delivery": "Marcar entregue",
		"action.confirm_hint":      "Pressione novamente para confirmar",
		"action.remove_favorite":   "Remover",

		"status.pending":    "Pendente",
		"status.accepted":   "Aceita",
		"status.rejected":   "Rejeitada",
		"status.canceled":   "Cancelada",
		"status.in_transit": "Em trânsito",
		"status.delivered":  "Entregue",

		"page.produce.title":   "Compras de produção",
		"page.delivery.title":  "Entregas",
		"page.equipment.title": "Aluguel de equipamentos",
		"page.land.title":      "Arrendamento de terras",
		"page.favorites.title": "Favoritos",
		"tab.requests.mine":     "Enviadas",
		"tab.requests.received": "Recebidas",
		"list.empty":            "Nada por aqui ainda.",
	},
}

func init() {
	for tag, messages := range copySet {
		for key, value := range messages {
			if err := message.SetString(tag, key, value); err != nil {
				panic(err)
			}
		}
	}
}
