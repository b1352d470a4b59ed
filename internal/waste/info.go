package waste

// Info is the static description attached to a label.
type Info struct {
	Deskripsi  string `json:"deskripsi"`
	Penanganan string `json:"penanganan"`
	Kategori   string `json:"kategori"`
}

// Unknown is returned for labels without an entry in the table.
var Unknown = Info{
	Deskripsi:  "Informasi tidak tersedia",
	Penanganan: "Informasi tidak tersedia",
	Kategori:   "Tidak diketahui",
}

var infos = map[Label]Info{
	Battery: {
		Deskripsi:  "Baterai bekas termasuk sampah elektronik yang mengandung bahan kimia berbahaya seperti timbal dan merkuri.",
		Penanganan: "Baterai bekas harus dikumpulkan dan didaur ulang melalui pusat daur ulang elektronik.",
		Kategori:   "B3 (Bahan Berbahaya dan Beracun)",
	},
	Biological: {
		Deskripsi:  "Sampah biologis berasal dari sisa makhluk hidup seperti sisa makanan dan daun-daunan.",
		Penanganan: "Sampah ini dapat diolah menjadi kompos untuk pupuk alami.",
		Kategori:   "Organik",
	},
	BrownGlass: {
		Deskripsi:  "Sampah kaca berwarna coklat seperti botol minuman bekas.",
		Penanganan: "Pisahkan kaca berwarna dari jenis kaca lain dan kirimkan ke pusat daur ulang kaca.",
		Kategori:   "Anorganik",
	},
	Cardboard: {
		Deskripsi:  "Kardus atau kertas tebal bekas yang umum digunakan sebagai kemasan.",
		Penanganan: "Lipat dan kumpulkan kardus untuk didaur ulang menjadi produk kertas baru.",
		Kategori:   "Anorganik",
	},
	Clothes: {
		Deskripsi:  "Pakaian bekas yang sudah tidak digunakan.",
		Penanganan: "Sumbangkan pakaian layak pakai atau gunakan kembali sebagai kain lap.",
		Kategori:   "Anorganik",
	},
	GreenGlass: {
		Deskripsi:  "Sampah kaca berwarna hijau seperti botol minuman.",
		Penanganan: "Pisahkan dan daur ulang bersama kaca berwarna lainnya.",
		Kategori:   "Anorganik",
	},
	Metal: {
		Deskripsi:  "Logam seperti kaleng minuman, besi tua, atau aluminium.",
		Penanganan: "Logam dapat dilebur kembali dan digunakan untuk pembuatan produk baru.",
		Kategori:   "Anorganik",
	},
	Paper: {
		Deskripsi:  "Sampah kertas seperti koran, majalah, atau kertas bekas.",
		Penanganan: "Kumpulkan dan daur ulang menjadi kertas daur ulang.",
		Kategori:   "Anorganik",
	},
	Plastic: {
		Deskripsi:  "Sampah plastik termasuk botol, kantong plastik, dan sedotan.",
		Penanganan: "Pisahkan plastik berdasarkan jenisnya dan kirim ke fasilitas daur ulang.",
		Kategori:   "Anorganik",
	},
	Shoes: {
		Deskripsi:  "Sepatu bekas yang sudah tidak layak digunakan.",
		Penanganan: "Sepatu bekas dapat disumbangkan atau didaur ulang menjadi bahan lain.",
		Kategori:   "Anorganik",
	},
	Residu: {
		Deskripsi:  "Sampah umum yang tidak dapat didaur ulang atau digunakan kembali.",
		Penanganan: "Buang ke tempat sampah akhir atau gunakan pengelolaan sampah terorganisir.",
		Kategori:   "Residu",
	},
	WhiteGlass: {
		Deskripsi:  "Sampah kaca bening seperti botol kaca putih atau gelas.",
		Penanganan: "Pisahkan kaca bening dan kirim ke pusat daur ulang kaca.",
		Kategori:   "Anorganik",
	},
}

// Lookup returns the description for l, or Unknown when there is none.
func Lookup(l Label) Info {
	return lookupIn(infos, l)
}

func lookupIn(table map[Label]Info, l Label) Info {
	info, ok := table[l]
	if !ok {
		return Unknown
	}
	return info
}

// Info returns the description for l.
func (l Label) Info() Info {
	return Lookup(l)
}
