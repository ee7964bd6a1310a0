package seed

import "clean-backend/internal/content"

var (
	str = content.StringPtr
	num = content.IntPtr
)

var approachItems = []content.ApproachItemPayload{
	{
		Icon:        str("🛡️"),
		Title:       str("Prévention"),
		Description: str("Nous souhaitons agir à la source en sensibilisant sur l'impact des déchets dans nos rivières. Notre objectif est d'encourager des changements de comportements pour limiter la pollution de nos cours d'eau."),
		Order:       num(1),
	},
	{
		Icon:        str("📢"),
		Title:       str("Animation"),
		Description: str("Nous participons à divers événements comme les Rendez-vous de l'Erdre pour créer du lien avec le public. Notre approche se veut accessible et conviviale, pour permettre à chacun de contribuer à sa façon."),
		Order:       num(2),
	},
	{
		Icon:        str("⬇️"),
		Title:       str("Réduction"),
		Description: str("Notre priorité est de réduire la quantité de déchets qui atteignent nos rivières. Nous identifions les zones d'accumulation et développons des solutions pratiques comme les bacs à déchets."),
		Order:       num(3),
	},
	{
		Icon:        str("🧤"),
		Title:       str("Collecte"),
		Description: str("L'action de collecte est au cœur de notre engagement. Nous organisons régulièrement des sorties de nettoyage sur l'Erdre et sur la Loire, en mobilisant des bénévoles et en utilisant des méthodes adaptées aux milieux aquatiques."),
		Order:       num(4),
	},
	{
		Icon:        str("🤝"),
		Title:       str("Collaboration"),
		Description: str("Nous travaillons main dans la main avec les autres acteurs du territoire : associations locales, collectivités, usagers des cours d'eau. C'est ensemble que nous pourrons avoir un impact significatif sur la qualité de nos rivières."),
		Order:       num(5),
	},
	{
		Icon:        str("📝"),
		Title:       str("Documentation"),
		Description: str("Nous observons et documentons l'état de nos rivières pour mieux comprendre les problématiques. Ces observations nous permettent d'adapter nos actions et de partager notre expérience avec d'autres acteurs engagés."),
		Order:       num(6),
	},
}

var events = []content.EventPayload{
	{
		Status:      str("Prochainement"),
		Title:       str("Première Éco-Navigation avec La Toue"),
		Description: str("Venez découvrir notre nouvelle formule de nettoyage de l'Erdre à bord de La Toue. Une expérience unique alliant action écologique et découverte du patrimoine fluvial."),
		ActionText:  str("Se tenir informé"),
		ActionLink:  str("#contact"),
		Order:       num(1),
	},
	{
		Status:      str("À venir"),
		Title:       str("Rendez-vous de l'Erdre"),
		Description: str("Retrouvez-nous lors des Rendez-vous de l'Erdre pour échanger sur nos actions et découvrir comment participer à la préservation de nos rivières."),
		ActionText:  str("Plus d'informations"),
		ActionLink:  str("#contact"),
		Order:       num(2),
	},
	{
		Status:      str("En continu"),
		Title:       str("Collectes sur l'Erdre"),
		Description: str("Nos actions de collecte se poursuivent régulièrement sur l'Erdre. Contactez-nous pour connaître les prochaines dates et rejoindre notre équipe de bénévoles."),
		ActionText:  str("Nous contacter"),
		ActionLink:  str("#contact"),
		Order:       num(3),
	},
}

var missions = []content.MissionPayload{
	{
		Icon:        str("🌊"),
		Title:       str("Actions concrètes"),
		Description: str("Notre priorité est d'agir sur le terrain pour réduire la pollution par les déchets dans nos cours d'eau. Nous menons des actions régulières de nettoyage sur l'Erdre et la Loire, en développant des solutions pratiques comme les bacs à déchets pour impliquer tous les usagers des rivières."),
		Order:       num(1),
	},
	{
		Icon:        str("🌱"),
		Title:       str("Sensibilisation"),
		Description: str("En participant à des événements locaux comme les Rendez-vous de l'Erdre, nous souhaitons sensibiliser le public aux enjeux de la pollution des rivières. Nous privilégions une approche positive et constructive, montrant qu'il est possible d'agir à son échelle."),
		Order:       num(2),
	},
	{
		Icon:        str("🤝"),
		Title:       str("Collaboration"),
		Description: str("Nous souhaitons contribuer à la dynamique locale en collaborant avec les autres acteurs du territoire, associations, collectivités, usagers des cours d'eau. Notre approche se veut complémentaire des actions existantes, en apportant des solutions innovantes comme les BADS."),
		Order:       num(3),
	},
}

var activities = []content.ActivityPayload{
	{
		Image:         str("/bac.jpg"),
		Title:         str("Projet BADS - Bacs à Déchets Sauvages"),
		Description:   str(`Nous déployons un réseau de <span class="highlight-blue">Bacs à Déchets Sauvages (BADS)</span> sur les rivières de Nantes Métropole, en commençant par l'Erdre. Ces bacs, installés à des points stratégiques, permettent aux plaisanciers, sportifs nautiques et riverains de participer activement à la collecte des déchets flottants. <span class="highlight-blue">Rejoignez le mouvement BADS et devenez acteur de la propreté de nos rivières !</span>`),
		ActionText:    str("Participer au projet BADS"),
		ActionLink:    str("#contact"),
		Order:         num(1),
		ImagePosition: str(content.ImageLeft),
	},
	{
		Image:         str("/bateau.png"),
		Title:         str("Éco-Navigations : Nettoyons en Explorant"),
		Description:   str(`Vivez une expérience unique avec nos <span class="highlight-blue">Éco-Navigations</span> ! Ces sorties en bateau, canoë ou paddle combinent découverte du patrimoine naturel et culturel de nos rivières et actions de nettoyage. <span class="highlight-blue">Explorez l'Erdre, la Loire et leurs affluents tout en contribuant concrètement à leur dépollution.</span> Une manière conviviale et originale de s'engager pour l'environnement.`),
		ActionText:    str("S'inscrire à une Éco-Navigation"),
		ActionLink:    str("#contact"),
		Order:         num(2),
		ImagePosition: str(content.ImageRight),
	},
	{
		Image:         str("/sensibilisation.jpg"),
		Title:         str("Sensibilisation : Partager et Échanger"),
		Description:   str(`Notre association participe à de nombreux <span class="highlight-blue">événements locaux</span> pour sensibiliser le public aux enjeux de la pollution des rivières. Stands d'information, ateliers pratiques, conférences... <span class="highlight-blue">Nous mettons en place différentes actions pour toucher un large public</span> et créer une prise de conscience collective. Nous intervenons également dans les écoles pour éduquer les plus jeunes à la préservation de nos ressources en eau.`),
		ActionText:    str("Organiser une intervention"),
		ActionLink:    str("#contact"),
		Order:         num(3),
		ImagePosition: str(content.ImageLeft),
	},
}

var contactInfo = content.ContactInfoPayload{
	Email:   str("contact@clean-nantes.org"),
	Phone:   str("+33 (0)6 XX XX XX XX"),
	Address: str("Nantes, France"),
}

var aboutContent = content.AboutContentPayload{
	Title: str("Qui sommes-nous ?"),
	Content: str("<p>C.L.E.A.N. - Conservation de l'Eau À Nantes est une association créée le 4 avril 2022 avec une mission ambitieuse : participer activement à la réduction des déchets dans nos rivières nantaises. Nous souhaitons apporter notre pierre à l'édifice en agissant concrètement là où nous pouvons avoir un impact direct.</p>" +
		"<p>Actuellement, nos actions se concentrent principalement sur l'Erdre, avec quelques interventions sur la Loire. À terme, nous aimerions étendre notre présence sur l'ensemble du réseau hydrographique nantais. Notre équipe de bénévoles passionnés développe des solutions pratiques comme les bacs à déchets et organise régulièrement des collectes.</p>" +
		"<p>Notre approche se veut collaborative et innovante : nous travaillons avec les usagers des cours d'eau, les associations locales et les collectivités pour imaginer et mettre en place des solutions durables. Nous sommes convaincus que c'est en unissant nos forces que nous pourrons avoir un réel impact sur la qualité de nos rivières.</p>" +
		"<p>Notre ambition ? Devenir un acteur efficace et durable de la protection des rivières nantaises, tout en menant des actions concrètes. Rejoignez l'aventure C.L.E.A.N. et participez à l'histoire que nous écrivons !</p>"),
	Image: str("/rive.jpeg"),
}
