package waste

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLabelsOrder(t *testing.T) {
	require.Equal(t, 12, Count)
	require.Equal(t, []string{
		"battery", "biological", "brown-glass", "cardboard", "clothes",
		"green-glass", "metal", "paper", "plastic", "shoes", "residu", "white-glass",
	}, Names())

	for i, l := range Labels {
		require.Equal(t, i, int(l))
	}
}

func TestParseLabel(t *testing.T) {
	for _, l := range Labels {
		got, err := ParseLabel(l.String())
		require.NoError(t, err)
		require.Equal(t, l, got)
	}

	_, err := ParseLabel("styrofoam")
	require.Error(t, err)
}

func TestFromIndex(t *testing.T) {
	l, err := FromIndex(10)
	require.NoError(t, err)
	require.Equal(t, Residu, l)

	_, err = FromIndex(12)
	require.Error(t, err)
	_, err = FromIndex(-1)
	require.Error(t, err)
}

func TestInvalidLabelString(t *testing.T) {
	require.False(t, Label(42).Valid())
	require.Equal(t, "Label(42)", Label(42).String())
}

func TestLookupGolden(t *testing.T) {
	cases := map[Label]Info{
		Battery: {
			"Baterai bekas termasuk sampah elektronik yang mengandung bahan kimia berbahaya seperti timbal dan merkuri.",
			"Baterai bekas harus dikumpulkan dan didaur ulang melalui pusat daur ulang elektronik.",
			"B3 (Bahan Berbahaya dan Beracun)",
		},
		Biological: {
			"Sampah biologis berasal dari sisa makhluk hidup seperti sisa makanan dan daun-daunan.",
			"Sampah ini dapat diolah menjadi kompos untuk pupuk alami.",
			"Organik",
		},
		BrownGlass: {
			"Sampah kaca berwarna coklat seperti botol minuman bekas.",
			"Pisahkan kaca berwarna dari jenis kaca lain dan kirimkan ke pusat daur ulang kaca.",
			"Anorganik",
		},
		Cardboard: {
			"Kardus atau kertas tebal bekas yang umum digunakan sebagai kemasan.",
			"Lipat dan kumpulkan kardus untuk didaur ulang menjadi produk kertas baru.",
			"Anorganik",
		},
		Clothes: {
			"Pakaian bekas yang sudah tidak digunakan.",
			"Sumbangkan pakaian layak pakai atau gunakan kembali sebagai kain lap.",
			"Anorganik",
		},
		GreenGlass: {
			"Sampah kaca berwarna hijau seperti botol minuman.",
			"Pisahkan dan daur ulang bersama kaca berwarna lainnya.",
			"Anorganik",
		},
		Metal: {
			"Logam seperti kaleng minuman, besi tua, atau aluminium.",
			"Logam dapat dilebur kembali dan digunakan untuk pembuatan produk baru.",
			"Anorganik",
		},
		Paper: {
			"Sampah kertas seperti koran, majalah, atau kertas bekas.",
			"Kumpulkan dan daur ulang menjadi kertas daur ulang.",
			"Anorganik",
		},
		Plastic: {
			"Sampah plastik termasuk botol, kantong plastik, dan sedotan.",
			"Pisahkan plastik berdasarkan jenisnya dan kirim ke fasilitas daur ulang.",
			"Anorganik",
		},
		Shoes: {
			"Sepatu bekas yang sudah tidak layak digunakan.",
			"Sepatu bekas dapat disumbangkan atau didaur ulang menjadi bahan lain.",
			"Anorganik",
		},
		Residu: {
			"Sampah umum yang tidak dapat didaur ulang atau digunakan kembali.",
			"Buang ke tempat sampah akhir atau gunakan pengelolaan sampah terorganisir.",
			"Residu",
		},
		WhiteGlass: {
			"Sampah kaca bening seperti botol kaca putih atau gelas.",
			"Pisahkan kaca bening dan kirim ke pusat daur ulang kaca.",
			"Anorganik",
		},
	}

	require.Len(t, cases, Count)
	for l, want := range cases {
		t.Run(l.String(), func(t *testing.T) {
			require.Equal(t, want, Lookup(l))
			require.Equal(t, want, l.Info())
		})
	}
}

func TestLookupFallback(t *testing.T) {
	require.Equal(t, Unknown, Lookup(Label(99)))

	// A table missing an entry must still answer with the placeholder.
	partial := map[Label]Info{Battery: infos[Battery]}
	got := lookupIn(partial, Paper)
	require.Equal(t, "Informasi tidak tersedia", got.Deskripsi)
	require.Equal(t, "Informasi tidak tersedia", got.Penanganan)
	require.Equal(t, "Tidak diketahui", got.Kategori)
}
