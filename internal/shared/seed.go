package shared

import "stayfinder/internal/domain"

func strp(s string) *string { return &s }

// SeedListings is the bundled starter catalog. IDs are assigned by the seeder
// at insert time.
var SeedListings = []domain.Listing{
	// İstanbul
	{Title: "Pera Palace Hotel", Description: "Tarihi lüks otel, Beyoğlu'nun kalbinde", City: "İstanbul", District: strp("Beyoğlu"), PropertyType: domain.TypeBoutiqueHotel, Price: 3500, GuestCapacity: 2, Features: []string{"wifi", "breakfast-included", "spa"}},
	{Title: "Boğaz Manzaralı Villa", Description: "Özel havuzlu, 6 kişilik lüks villa", City: "İstanbul", District: strp("Beşiktaş"), PropertyType: domain.TypeVilla, Price: 8000, GuestCapacity: 6, Features: []string{"pool", "wifi", "jacuzzi", "balcony"}},
	{Title: "Modern Apart Daire", Description: "Şişli'de merkezi konumda apart", City: "İstanbul", District: strp("Şişli"), PropertyType: domain.TypeApart, Price: 1500, GuestCapacity: 4, Features: []string{"wifi", "air-conditioning", "parking"}},

	// Antalya
	{Title: "Denize Sıfır Resort", Description: "Her şey dahil lüks tatil köyü", City: "Antalya", District: strp("Lara"), PropertyType: domain.TypeResort, Price: 4500, GuestCapacity: 4, Features: []string{"sea-view", "pool", "spa", "breakfast-included"}},
	{Title: "Kaleiçi Butik Otel", Description: "Tarihi Kaleiçi'nde butik konaklama", City: "Antalya", District: strp("Kaleiçi"), PropertyType: domain.TypeBoutiqueHotel, Price: 2800, GuestCapacity: 2, Features: []string{"wifi", "breakfast-included", "balcony"}},
	{Title: "Belek Golf Resort", Description: "Golf sahası manzaralı otel", City: "Antalya", District: strp("Belek"), PropertyType: domain.TypeResort, Price: 5200, GuestCapacity: 4, Features: []string{"pool", "spa", "fitness", "breakfast-included"}},
	{Title: "Konyaaltı Plaj Apart", Description: "Plaja 50m mesafede apart otel", City: "Antalya", District: strp("Konyaaltı"), PropertyType: domain.TypeApart, Price: 1800, GuestCapacity: 4, Features: []string{"sea-view", "wifi", "balcony"}},
	{Title: "Lara Deniz Villası", Description: "Havuzlu, deniz manzaralı aile villası", City: "Antalya", District: strp("Lara"), PropertyType: domain.TypeVilla, Price: 7500, GuestCapacity: 8, Features: []string{"pool", "sea-view", "jacuzzi", "wifi"}},
	{Title: "Kaş Deniz Manzaralı Otel", Description: "Likya yolu başlangıcında", City: "Antalya", District: strp("Kaş"), PropertyType: domain.TypeBoutiqueHotel, Price: 3400, GuestCapacity: 2, Features: []string{"sea-view", "wifi", "breakfast-included", "balcony"}},
	{Title: "Olympos Ağaç Evleri", Description: "Doğa içinde ağaç ev konsepti", City: "Antalya", District: strp("Olympos"), PropertyType: domain.TypeBungalow, Price: 2400, GuestCapacity: 3, Features: []string{"wifi", "breakfast-included"}},
	{Title: "Çıralı Sahil Pansiyonu", Description: "Caretta plajı kenarında", City: "Antalya", District: strp("Çıralı"), PropertyType: domain.TypeGuesthouse, Price: 1600, GuestCapacity: 2, Features: []string{"sea-view", "wifi", "breakfast-included"}},

	// Bodrum
	{Title: "Bodrum Marina Otel", Description: "Marina manzaralı lüks konaklama", City: "Bodrum", District: strp("Merkez"), PropertyType: domain.TypeHotel, Price: 3800, GuestCapacity: 2, Features: []string{"pool", "wifi", "spa", "balcony"}},
	{Title: "Yalıkavak Villa", Description: "Özel plajlı 8 kişilik villa", City: "Bodrum", District: strp("Yalıkavak"), PropertyType: domain.TypeVilla, Price: 12000, GuestCapacity: 8, Features: []string{"pool", "sea-view", "jacuzzi", "wifi"}},
	{Title: "Türkbükü Bungalov", Description: "Plaj kenarı romantik bungalov", City: "Bodrum", District: strp("Türkbükü"), PropertyType: domain.TypeBungalow, Price: 4500, GuestCapacity: 2, Features: []string{"sea-view", "balcony", "wifi"}},
	{Title: "Gümbet Apart Otel", Description: "Aile dostu apart otel", City: "Bodrum", District: strp("Gümbet"), PropertyType: domain.TypeApart, Price: 2200, GuestCapacity: 4, Features: []string{"pool", "wifi", "air-conditioning"}},

	// Fethiye
	{Title: "Ölüdeniz Resort", Description: "Ölüdeniz manzaralı tatil köyü", City: "Fethiye", District: strp("Ölüdeniz"), PropertyType: domain.TypeResort, Price: 3600, GuestCapacity: 4, Features: []string{"sea-view", "pool", "breakfast-included", "spa"}},
	{Title: "Göcek Marina Villa", Description: "Marina manzaralı lüks villa", City: "Fethiye", District: strp("Göcek"), PropertyType: domain.TypeVilla, Price: 9500, GuestCapacity: 6, Features: []string{"pool", "jacuzzi", "wifi", "balcony"}},
	{Title: "Çalış Plajı Apart", Description: "Plaj kenarı ekonomik apart", City: "Fethiye", District: strp("Çalış"), PropertyType: domain.TypeApart, Price: 1600, GuestCapacity: 3, Features: []string{"sea-view", "wifi", "balcony"}},

	// Kapadokya
	{Title: "Göreme Mağara Oteli", Description: "Otantik mağara otel, balon turu dahil", City: "Kapadokya", District: strp("Göreme"), PropertyType: domain.TypeBoutiqueHotel, Price: 2800, GuestCapacity: 2, Features: []string{"wifi", "breakfast-included", "fireplace"}},
	{Title: "Ürgüp Kaya Evi", Description: "Tarihi taş ev, şömineli", City: "Kapadokya", District: strp("Ürgüp"), PropertyType: domain.TypeBoutiqueHotel, Price: 3200, GuestCapacity: 3, Features: []string{"fireplace", "wifi", "breakfast-included"}},
	{Title: "Avanos Pansiyonu", Description: "Aile işletmesi sıcak pansiyon", City: "Kapadokya", District: strp("Avanos"), PropertyType: domain.TypeGuesthouse, Price: 1200, GuestCapacity: 2, Features: []string{"wifi", "breakfast-included"}},

	// İzmir
	{Title: "Kordon Otel", Description: "Kordon boyu deniz manzaralı", City: "İzmir", District: strp("Alsancak"), PropertyType: domain.TypeHotel, Price: 2400, GuestCapacity: 2, Features: []string{"wifi", "balcony", "breakfast-included"}},
	{Title: "Çeşme Marina Resort", Description: "Her şey dahil plaj oteli", City: "İzmir", District: strp("Çeşme"), PropertyType: domain.TypeResort, Price: 4800, GuestCapacity: 4, Features: []string{"sea-view", "pool", "spa", "breakfast-included"}},
	{Title: "Alaçatı Taş Ev", Description: "Restore edilmiş Rum evi", City: "İzmir", District: strp("Alaçatı"), PropertyType: domain.TypeBoutiqueHotel, Price: 3500, GuestCapacity: 2, Features: []string{"wifi", "breakfast-included", "balcony"}},

	// Sapanca
	{Title: "Göl Manzaralı Villa", Description: "Sapanca Gölü manzaralı şömineli villa", City: "Sapanca", PropertyType: domain.TypeVilla, Price: 5500, GuestCapacity: 6, Features: []string{"fireplace", "jacuzzi", "wifi", "balcony"}},
	{Title: "Ormaniçi Bungalov", Description: "Doğa içinde huzurlu bungalov", City: "Sapanca", PropertyType: domain.TypeBungalow, Price: 3200, GuestCapacity: 2, Features: []string{"fireplace", "wifi", "breakfast-included"}},

	// Marmaris
	{Title: "İçmeler Resort", Description: "Denize sıfır her şey dahil", City: "Marmaris", District: strp("İçmeler"), PropertyType: domain.TypeResort, Price: 4200, GuestCapacity: 4, Features: []string{"sea-view", "pool", "spa", "breakfast-included"}},
	{Title: "Turunç Butik Otel", Description: "Sakin koyda butik konaklama", City: "Marmaris", District: strp("Turunç"), PropertyType: domain.TypeBoutiqueHotel, Price: 2600, GuestCapacity: 2, Features: []string{"sea-view", "wifi", "breakfast-included"}},

	// Alanya
	{Title: "Kleopatra Beach Hotel", Description: "Ünlü Kleopatra plajında", City: "Alanya", District: strp("Merkez"), PropertyType: domain.TypeHotel, Price: 2800, GuestCapacity: 3, Features: []string{"sea-view", "pool", "wifi"}},
	{Title: "Konaklı Resort", Description: "Aile dostu her şey dahil", City: "Alanya", District: strp("Konaklı"), PropertyType: domain.TypeResort, Price: 3800, GuestCapacity: 5, Features: []string{"sea-view", "pool", "breakfast-included", "spa"}},

	// Kuşadası
	{Title: "Ladies Beach Resort", Description: "Kadınlar Denizi kenarında", City: "Kuşadası", District: strp("Merkez"), PropertyType: domain.TypeResort, Price: 3400, GuestCapacity: 4, Features: []string{"sea-view", "pool", "spa", "wifi"}},
	{Title: "Davutlar Villası", Description: "Milli park kenarı özel villa", City: "Kuşadası", District: strp("Davutlar"), PropertyType: domain.TypeVilla, Price: 6500, GuestCapacity: 6, Features: []string{"pool", "jacuzzi", "wifi"}},

	// Diğer
	{Title: "Uludağ Kayak Oteli", Description: "Pistlere yakın kayak oteli", City: "Bursa", District: strp("Uludağ"), PropertyType: domain.TypeHotel, Price: 4500, GuestCapacity: 3, Features: []string{"fireplace", "spa", "wifi", "breakfast-included"}},
	{Title: "Pamukkale Termal Otel", Description: "Termal havuzlu spa otel", City: "Denizli", District: strp("Pamukkale"), PropertyType: domain.TypeHotel, Price: 3000, GuestCapacity: 2, Features: []string{"spa", "pool", "wifi", "breakfast-included"}},
	{Title: "Datça Butik Pansiyonu", Description: "Sakin kasabada aile pansiyonu", City: "Muğla", District: strp("Datça"), PropertyType: domain.TypeGuesthouse, Price: 1800, GuestCapacity: 2, Features: []string{"wifi", "breakfast-included"}},
	{Title: "Akyaka Kitesurf Apart", Description: "Sörf tutkunları için ideal", City: "Muğla", District: strp("Akyaka"), PropertyType: domain.TypeApart, Price: 2200, GuestCapacity: 4, Features: []string{"sea-view", "wifi", "balcony"}},
	{Title: "Bozcaada Bağ Evi", Description: "Üzüm bağları arasında taş ev", City: "Çanakkale", District: strp("Bozcaada"), PropertyType: domain.TypeBoutiqueHotel, Price: 3200, GuestCapacity: 2, Features: []string{"wifi", "breakfast-included", "balcony"}},
	{Title: "Assos Antik Liman Pansiyonu", Description: "Antik liman manzaralı pansiyon", City: "Çanakkale", District: strp("Assos"), PropertyType: domain.TypeGuesthouse, Price: 2000, GuestCapacity: 2, Features: []string{"wifi", "breakfast-included", "balcony"}},
}

// Suggestion lists served to the manual-entry form.
var (
	SuggestedCities = []string{
		"İstanbul", "Antalya", "Bodrum", "Fethiye", "İzmir",
		"Kapadokya", "Alaçatı", "Sapanca", "Çeşme", "Kuşadası",
		"Marmaris", "Alanya", "Side", "Belek", "Göcek",
	}
	SuggestedFeatures = []string{
		"pool", "sea-view", "spa", "jacuzzi", "fireplace",
		"wifi", "balcony", "breakfast-included", "air-conditioning",
		"parking", "pet-friendly", "sauna", "fitness",
	}
	SuggestedPropertyTypes = []string{
		"hotel", "villa", "apart", "bungalow", "resort",
		"boutique-hotel", "guesthouse",
	}
)
