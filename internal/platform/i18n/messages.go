package i18n

import "github.com/himalayan-sound/api/internal/domain"

// messages holds the translation catalog keyed by message key then locale.
// Keys follow a section.item convention mirroring the storefront navigation.
var messages = map[string]map[domain.Locale]string{
	"nav.home": {
		domain.LocaleEN: "Home",
		domain.LocaleUK: "Головна",
		domain.LocaleRU: "Главная",
	},
	"nav.shop": {
		domain.LocaleEN: "Shop",
		domain.LocaleUK: "Магазин",
		domain.LocaleRU: "Магазин",
	},
	"nav.blog": {
		domain.LocaleEN: "Blog",
		domain.LocaleUK: "Блог",
		domain.LocaleRU: "Блог",
	},
	"nav.about": {
		domain.LocaleEN: "About Us",
		domain.LocaleUK: "Про нас",
		domain.LocaleRU: "О нас",
	},
	"nav.contact": {
		domain.LocaleEN: "Contact",
		domain.LocaleUK: "Контакти",
		domain.LocaleRU: "Контакты",
	},
	"nav.cart": {
		domain.LocaleEN: "Cart",
		domain.LocaleUK: "Кошик",
		domain.LocaleRU: "Корзина",
	},
	"shop.addToCart": {
		domain.LocaleEN: "Add to cart",
		domain.LocaleUK: "Додати в кошик",
		domain.LocaleRU: "Добавить в корзину",
	},
	"shop.outOfStock": {
		domain.LocaleEN: "Out of stock",
		domain.LocaleUK: "Немає в наявності",
		domain.LocaleRU: "Нет в наличии",
	},
	"shop.featured": {
		domain.LocaleEN: "Featured",
		domain.LocaleUK: "Рекомендовані",
		domain.LocaleRU: "Рекомендуемые",
	},
	"shop.handmade": {
		domain.LocaleEN: "Handmade",
		domain.LocaleUK: "Ручна робота",
		domain.LocaleRU: "Ручная работа",
	},
	"shop.filter.category": {
		domain.LocaleEN: "Category",
		domain.LocaleUK: "Категорія",
		domain.LocaleRU: "Категория",
	},
	"shop.filter.material": {
		domain.LocaleEN: "Material",
		domain.LocaleUK: "Матеріал",
		domain.LocaleRU: "Материал",
	},
	"shop.filter.price": {
		domain.LocaleEN: "Price range",
		domain.LocaleUK: "Діапазон цін",
		domain.LocaleRU: "Диапазон цен",
	},
	"shop.sort.popularity": {
		domain.LocaleEN: "Most popular",
		domain.LocaleUK: "Найпопулярніші",
		domain.LocaleRU: "Самые популярные",
	},
	"shop.sort.priceLowHigh": {
		domain.LocaleEN: "Price: low to high",
		domain.LocaleUK: "Ціна: від низької до високої",
		domain.LocaleRU: "Цена: по возрастанию",
	},
	"shop.sort.priceHighLow": {
		domain.LocaleEN: "Price: high to low",
		domain.LocaleUK: "Ціна: від високої до низької",
		domain.LocaleRU: "Цена: по убыванию",
	},
	"cart.empty": {
		domain.LocaleEN: "Your cart is empty",
		domain.LocaleUK: "Ваш кошик порожній",
		domain.LocaleRU: "Ваша корзина пуста",
	},
	"cart.itemCount": {
		domain.LocaleEN: "%d items in cart",
		domain.LocaleUK: "%d товарів у кошику",
		domain.LocaleRU: "%d товаров в корзине",
	},
	"cart.checkout": {
		domain.LocaleEN: "Proceed to checkout",
		domain.LocaleUK: "Оформити замовлення",
		domain.LocaleRU: "Оформить заказ",
	},
	"checkout.placeOrder": {
		domain.LocaleEN: "Place order",
		domain.LocaleUK: "Підтвердити замовлення",
		domain.LocaleRU: "Подтвердить заказ",
	},
	"order.confirmed": {
		domain.LocaleEN: "Order %s confirmed",
		domain.LocaleUK: "Замовлення %s підтверджено",
		domain.LocaleRU: "Заказ %s подтверждён",
	},
	"contact.success": {
		domain.LocaleEN: "Thank you, we will get back to you soon",
		domain.LocaleUK: "Дякуємо, ми скоро з вами зв'яжемося",
		domain.LocaleRU: "Спасибо, мы скоро свяжемся с вами",
	},
	"newsletter.subscribed": {
		domain.LocaleEN: "You are subscribed to our newsletter",
		domain.LocaleUK: "Ви підписані на нашу розсилку",
		domain.LocaleRU: "Вы подписаны на нашу рассылку",
	},
	"error.notFound": {
		domain.LocaleEN: "Page not found",
		domain.LocaleUK: "Сторінку не знайдено",
		domain.LocaleRU: "Страница не найдена",
	},
}
